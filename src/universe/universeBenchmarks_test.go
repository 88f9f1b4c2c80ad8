package universe

import (
	"math/rand"
	"sort"
	"testing"

	"sparselife/src/life"
	"sparselife/src/pattern"
)

var (
	//acorn: a seven-cell methuselah, enough activity to exercise the engines
	acornRLE = "bo$3bo$2o2b3o!"

	benchEngines = map[string]life.Engine{
		"sequential": life.SequentialEngine{},
		"parallel":   life.ParallelEngine{},
	}
)

const (
	benchWidth  = 200
	benchHeight = 200
)

func universeStep(u Universe, b *testing.B) {
	stateCh := u.StateCh()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		u.Clear()
		<-stateCh //wait for finish
		if err := u.SettleRLE(acornRLE); err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		u.Step()
		for {
			st := <-stateCh
			if st.RunningMode == RunningStateManual {
				break
			}
		}
	}
	u.Close()
	close(stateCh)
}

func universeRun(u Universe, b *testing.B) {
	stateCh := u.StateCh()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		u.Clear()
		<-stateCh //wait for finish
		if err := u.SettleRLE(acornRLE); err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		u.Run()
		for {
			st := <-stateCh
			if st.RunningMode == RunningStateFinished {
				break
			}
		}
	}
	u.Close()
	close(stateCh)
}

func newStateCh() chan Status {
	return make(chan Status, 10)
}

func newUniverseOptions() *Options {
	o := DefaultUniverseOptions
	o.Interval = 0
	o.Width = benchWidth
	o.Height = benchHeight
	o.MaxSteps = 100
	return &o
}

func newBenchCatalog(b *testing.B) *pattern.Catalog {
	c, err := pattern.NewCatalog(rand.New(rand.NewSource(1)))
	if err != nil {
		b.Fatal(err)
	}
	return c
}

func engineNames() (names []string) {
	names = make([]string, 0, len(benchEngines))
	for k := range benchEngines {
		names = append(names, k)
	}
	sort.Strings(names)
	return
}

func Benchmark_Step(b *testing.B) {
	for _, e := range engineNames() {
		b.Run(e, func(b *testing.B) {
			u := NewBaseUniverse(newUniverseOptions(), benchEngines[e], newBenchCatalog(b), newStateCh())
			universeStep(u, b)
		})
	}
}

func Benchmark_Universe(b *testing.B) {
	for _, e := range engineNames() {
		b.Run(e, func(b *testing.B) {
			u := NewBaseUniverse(newUniverseOptions(), benchEngines[e], newBenchCatalog(b), newStateCh())
			universeRun(u, b)
		})
	}
}
