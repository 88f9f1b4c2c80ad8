package life

import (
	"math/rand"
	"sort"
	"testing"
)

const (
	soupSize  = 300
	soupCells = 30000
)

//benchmarkSoup builds a reproducible random soup for the engine benchmarks
func benchmarkSoup() CellSet {
	rng := rand.New(rand.NewSource(42))
	cells := NewCellSet()
	for i := 0; i < soupCells; i++ {
		cells.Add(Point{rng.Intn(soupSize), rng.Intn(soupSize)})
	}
	return cells
}

func engineNames() (names []string) {
	names = make([]string, 0, len(testEngines))
	for k := range testEngines {
		names = append(names, k)
	}
	sort.Strings(names)
	return
}

func Benchmark_Tick(b *testing.B) {
	soup := benchmarkSoup()
	for _, name := range engineNames() {
		e := testEngines[name]
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				e.Tick(soup)
			}
		})
	}
}

func Benchmark_Generations(b *testing.B) {
	for _, name := range engineNames() {
		e := testEngines[name]
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				cells := benchmarkSoup()
				b.StartTimer()
				for g := 0; g < 10; g++ {
					cells = e.Tick(cells)
				}
			}
		})
	}
}
