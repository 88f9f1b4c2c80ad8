package life

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

//Engine computes the next generation for a set of live cells
//implementations must be pure: same input, same output, no retained state
type Engine interface {
	Name() string
	Tick(cells CellSet) CellSet
}

//NextState applies the Conway transition rule to a single cell
//a live cell survives with 2 or 3 live neighbors, a dead cell is born with exactly 3
func NextState(p Point, cells CellSet) bool {
	n := LiveNeighbors(p, cells)
	return n == 3 || (n == 2 && cells.Contains(p))
}

//candidates returns every cell whose state can change this generation:
//the live cells themselves plus all of their neighbors
//any other coordinate is dead with zero live neighbors and stays dead
func candidates(cells CellSet) CellSet {
	cs := make(CellSet, len(cells)*4)
	for p := range cells {
		cs.Add(p)
		for _, n := range Neighbors(p) {
			cs.Add(n)
		}
	}
	return cs
}

//SequentialEngine evaluates all candidate cells on the calling goroutine
type SequentialEngine struct{}

func (SequentialEngine) Name() string { return "sequential" }

//Tick advances the set by one generation
func (SequentialEngine) Tick(cells CellSet) CellSet {
	next := make(CellSet, len(cells))
	for p := range candidates(cells) {
		if NextState(p, cells) {
			next.Add(p)
		}
	}
	return next
}

//minParallelCandidates is the candidate count below which splitting the work
//across goroutines costs more than it saves
const minParallelCandidates = 2048

//ParallelEngine shards the candidate cells across a group of workers
//the input set is only read, so the workers need no synchronization;
//each collects its survivors locally and the shards are merged at the end
type ParallelEngine struct {
	Workers int //0 means runtime.NumCPU()
}

func (ParallelEngine) Name() string { return "parallel" }

//Tick advances the set by one generation
func (e ParallelEngine) Tick(cells CellSet) CellSet {
	workers := e.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	cs := candidates(cells)
	if workers == 1 || cs.Len() < minParallelCandidates {
		next := make(CellSet, len(cells))
		for p := range cs {
			if NextState(p, cells) {
				next.Add(p)
			}
		}
		return next
	}

	work := cs.Points()
	chunk := (len(work) + workers - 1) / workers
	survivors := make([][]Point, workers)

	var eg errgroup.Group
	for i := 0; i < workers; i++ {
		start := i * chunk
		if start >= len(work) {
			break
		}
		end := start + chunk
		if end > len(work) {
			end = len(work)
		}
		i := i
		eg.Go(func() error {
			var alive []Point
			for _, p := range work[start:end] {
				if NextState(p, cells) {
					alive = append(alive, p)
				}
			}
			survivors[i] = alive
			return nil
		})
	}
	//the workers never fail, Wait only joins them
	_ = eg.Wait()

	next := make(CellSet, len(cells))
	for _, shard := range survivors {
		for _, p := range shard {
			next.Add(p)
		}
	}
	return next
}
