package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"

	"sparselife/src/life"
	"sparselife/src/pattern"
	"sparselife/src/universe"
	"sparselife/src/view"
)

var (
	engines = map[string]life.Engine{
		"sequential": life.SequentialEngine{},
		"parallel":   life.ParallelEngine{},
	}
)

type EnvOptions struct {
	interactive bool
	randomData  bool
	listCatalog bool
	engine      string
	pattern     string
	rle         string
	seed        int64
}

func main() {
	eo, uo := initOptions()

	catalog, err := pattern.NewCatalog(newRand(eo.seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "broken pattern catalog: %v\n", err)
		os.Exit(1)
	}

	if eo.listCatalog {
		printCatalog(catalog)
		return
	}

	var stateCh chan universe.Status

	if !eo.interactive {
		stateCh = make(chan universe.Status, 10) //the buffered channel to getting the universe status
	}

	u := universe.NewBaseUniverse(uo, engines[eo.engine], catalog, stateCh)

	if eo.rle != "" {
		if err := u.SettleRLE(eo.rle); err != nil {
			fmt.Fprintf(os.Stderr, "cannot decode the pattern: %v\n", err)
			os.Exit(1)
		}
	} else if eo.randomData {
		u.SettleWithRandomData()
	} else {
		u.SettlePattern(eo.pattern)
	}

	if eo.interactive {
		v := view.NewViewTerminal()
		u.RegisterViewer(v)
		v.Start()
		u.Close()
	} else {
		fmt.Printf("\"The Life\" game simulation started...\n")

		startTime := time.Now()
		u.Run()
		for {
			st := <-stateCh
			if st.RunningMode == universe.RunningStateFinished {
				totalTime := time.Since(startTime).Round(time.Millisecond)
				fmt.Printf("Finished, iteration is: %v, total running time: %v\n", st.IterationNum, totalTime)
				break
			}
			if st.RunningMode == universe.RunningStateStep {
				if st.IterationNum%10 == 0 {
					fmt.Printf("Finished iterations: %v\n", st.IterationNum)
				}
			}
		}
		u.Close()
		close(stateCh)
	}

}

//newRand returns a seeded generator for reproducible runs, or nil
//to let the catalog seed one from the clock
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(seed))
}

//printCatalog lists the built-in patterns
func printCatalog(c *pattern.Catalog) {
	fmt.Println("Built-in patterns:")
	for _, p := range c.Patterns() {
		fmt.Printf("  %v %v (%v, %v cells)\n      %v\n",
			aurora.Green(p.ID),
			p.Name,
			aurora.Cyan(p.Category),
			p.Cells.Len(),
			p.Description)
	}
}

func initOptions() (eo *EnvOptions, uo *universe.Options) {

	uo = &universe.DefaultUniverseOptions
	engineNames := make([]string, 0, len(engines))
	for k := range engines {
		engineNames = append(engineNames, k)
	}
	eo = &EnvOptions{engine: "sequential", pattern: "glider"}
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&uo.Width, "x", "width", "Width of a simulation field")
	flaggy.Int(&uo.Height, "y", "height", "Height of a simulation field")
	flaggy.Duration(&uo.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&uo.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.Bool(&eo.listCatalog, "l", "list", "List the built-in patterns and exit")
	flaggy.String(&eo.pattern, "p", "pattern", "Seed with a built-in pattern by id or name (unknown names settle random data)")
	flaggy.String(&eo.rle, "", "rle", "Seed with a run-length encoded pattern body, for example 'bo$2bo$3o!'")
	flaggy.Int64(&eo.seed, "", "seed", "Seed for the random generator (0 means seed from the clock)")
	flaggy.String(&eo.engine, "e", "engine", "Engine to use ["+strings.Join(engineNames, "|")+"]")

	flaggy.Parse()

	_, ok := engines[eo.engine]
	if !ok {
		flaggy.ShowHelpAndExit("unknown engine")
	}

	return
}
