package life

import (
	"testing"
)

var testEngines = map[string]Engine{
	"sequential": SequentialEngine{},
	"parallel":   ParallelEngine{},
	"parallel-2": ParallelEngine{Workers: 2},
}

func glider() CellSet {
	return NewCellSet(
		Point{1, 0},
		Point{2, 1},
		Point{0, 2}, Point{1, 2}, Point{2, 2},
	)
}

func TestTickEmpty(t *testing.T) {
	for name, e := range testEngines {
		t.Run(name, func(t *testing.T) {
			next := e.Tick(NewCellSet())
			if next.Len() != 0 {
				t.Fatalf("tick of the empty set produced %v cells", next.Len())
			}
		})
	}
}

func TestTickDeterministic(t *testing.T) {
	for name, e := range testEngines {
		t.Run(name, func(t *testing.T) {
			cells := glider()
			first := e.Tick(cells)
			second := e.Tick(cells)
			if !first.Equal(second) {
				t.Fatalf("two ticks of the same set differ: %v vs %v", first.Points(), second.Points())
			}
		})
	}
}

func TestTickDoesNotMutateInput(t *testing.T) {
	for name, e := range testEngines {
		t.Run(name, func(t *testing.T) {
			cells := glider()
			e.Tick(cells)
			if !cells.Equal(glider()) {
				t.Fatalf("input set was mutated: %v", cells.Points())
			}
		})
	}
}

func TestBlockIsStillLife(t *testing.T) {
	block := NewCellSet(Point{0, 0}, Point{0, 1}, Point{1, 0}, Point{1, 1})
	for name, e := range testEngines {
		t.Run(name, func(t *testing.T) {
			next := e.Tick(block)
			if !next.Equal(block) {
				t.Fatalf("block is not a fixed point, got %v", next.Points())
			}
		})
	}
}

func TestBlinkerPeriodTwo(t *testing.T) {
	blinker := NewCellSet(Point{0, 0}, Point{0, 1}, Point{0, 2})
	rotated := NewCellSet(Point{-1, 1}, Point{0, 1}, Point{1, 1})
	for name, e := range testEngines {
		t.Run(name, func(t *testing.T) {
			once := e.Tick(blinker)
			if !once.Equal(rotated) {
				t.Fatalf("after one tick got %v, want %v", once.Points(), rotated.Points())
			}
			twice := e.Tick(once)
			if !twice.Equal(blinker) {
				t.Fatalf("blinker did not return after two ticks, got %v", twice.Points())
			}
		})
	}
}

func TestGliderTranslatesAfterFourTicks(t *testing.T) {
	want := Translate(glider(), 1, 1)
	for name, e := range testEngines {
		t.Run(name, func(t *testing.T) {
			cells := glider()
			for i := 0; i < 4; i++ {
				cells = e.Tick(cells)
			}
			if !cells.Equal(want) {
				t.Fatalf("after four ticks got %v, want %v", cells.Points(), want.Points())
			}
		})
	}
}

func TestNeighbors(t *testing.T) {
	p := Point{3, -2}
	n := Neighbors(p)
	seen := NewCellSet()
	for _, q := range n {
		if q == p {
			t.Fatalf("the cell itself is listed as a neighbor")
		}
		dx, dy := q.X-p.X, q.Y-p.Y
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Fatalf("%v is not at Chebyshev distance 1 from %v", q, p)
		}
		seen.Add(q)
	}
	if seen.Len() != 8 {
		t.Fatalf("got %v distinct neighbors, want 8", seen.Len())
	}
}

func TestLiveNeighbors(t *testing.T) {
	cells := NewCellSet(Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{5, 5})
	tests := []struct {
		p    Point
		want int
	}{
		{Point{1, 1}, 3},
		{Point{1, 0}, 2},
		{Point{0, 0}, 1},
		{Point{5, 5}, 0},
		{Point{10, 10}, 0},
	}
	for _, tc := range tests {
		if got := LiveNeighbors(tc.p, cells); got != tc.want {
			t.Errorf("LiveNeighbors(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestNextStateRule(t *testing.T) {
	//live cell at the origin surrounded by n live neighbors
	for n := 0; n <= 8; n++ {
		cells := NewCellSet(Point{0, 0})
		for i, q := range Neighbors(Point{0, 0}) {
			if i < n {
				cells.Add(q)
			}
		}
		wantLive := n == 2 || n == 3
		if got := NextState(Point{0, 0}, cells); got != wantLive {
			t.Errorf("live cell with %v neighbors: next state %v, want %v", n, got, wantLive)
		}
		cells.Remove(Point{0, 0})
		wantBorn := n == 3
		if got := NextState(Point{0, 0}, cells); got != wantBorn {
			t.Errorf("dead cell with %v neighbors: next state %v, want %v", n, got, wantBorn)
		}
	}
}
