package universe

import (
	"sync"
	"time"

	"sparselife/src/life"
	"sparselife/src/pattern"
)

//Options represents the Universe's configurable options
//Width and Height bound pattern placement and rendering only,
//the simulation itself runs on the unbounded plane
type Options struct {
	Width           int
	Height          int
	Interval        time.Duration
	MaxSteps        int
	MaxSkippedTicks int
	Advanced        map[string]interface{} //advanced options (engine specific)
}

//Status represents the status of the Universe at concrete moment
type Status struct {
	IterationNum  int
	RunningMode   RunningState
	LiveCells     int
	IterationTime time.Duration
	Details       map[string]interface{} //advanced details (engine specific)
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the engine
type Viewer interface {
	Refresh()
	Register(u Universe)
	Start()
}

//The universe running status at the concrete moment
type RunningState int

//default options
const (
	DefSimulationInterval = time.Millisecond * 100
	DefMaxSteps           = 1000
	DefWidth              = 40
	DefHeight             = 15
	DefMaxSkippedTicks    = 5
)

const (
	RunningStateManual   RunningState = 0x0
	RunningStateStep     RunningState = 0x1
	RunningStateRun      RunningState = 0x2
	RunningStateFinished RunningState = 0x3
)

var DefaultUniverseOptions = Options{
	Width:           DefWidth,
	Height:          DefHeight,
	Interval:        DefSimulationInterval,
	MaxSteps:        DefMaxSteps,
	MaxSkippedTicks: DefMaxSkippedTicks,
}

//BaseUniverse drives one simulation session over a sparse cell set
//implements Universe interface
//the generation algorithm itself is delegated to the injected life.Engine
type BaseUniverse struct {
	options Options
	engine  life.Engine
	catalog *pattern.Catalog
	state   struct {
		Status
		sync.Mutex
	}
	cells struct {
		set life.CellSet
		sync.Mutex
	}
	stateCh   chan Status
	views     []Viewer
	controlCh chan func()
	closeCh   chan bool
}

//NewBaseUniverse creates the BaseUniverse instance
func NewBaseUniverse(o *Options, engine life.Engine, catalog *pattern.Catalog, stateCh chan Status) *BaseUniverse {
	if o == nil {
		o = &DefaultUniverseOptions
	}
	o.Advanced = make(map[string]interface{})
	o.Advanced["engine"] = engine.Name()

	u := BaseUniverse{
		options:   *o,
		engine:    engine,
		catalog:   catalog,
		controlCh: make(chan func(), 1),
		closeCh:   make(chan bool, 1),
		stateCh:   stateCh,
	}
	u.state.Details = make(map[string]interface{})
	u.cells.set = life.NewCellSet()
	u.refreshView()
	go u.mainLoop()
	return &u
}

//Settle merges the cells into the universe as live
func (u *BaseUniverse) Settle(cells life.CellSet) {
	u.cells.Lock()
	for p := range cells {
		u.cells.set.Add(p)
	}
	u.state.LiveCells = u.cells.set.Len()
	u.cells.Unlock()
	u.refreshView()
}

//SettlePattern populates the universe with a catalog pattern, centered on the grid
//an unknown identifier settles a random seed instead, the lookup never fails
func (u *BaseUniverse) SettlePattern(idOrName string) {
	u.Settle(u.centered(u.catalog.Get(idOrName, u.placementSize())))
}

//SettleRLE decodes the RLE pattern body and settles it centered on the grid
func (u *BaseUniverse) SettleRLE(body string) error {
	cells, err := pattern.DecodeRLE(body)
	if err != nil {
		return err
	}
	u.Settle(u.centered(cells))
	return nil
}

//SettleWithRandomData clears the universe and populates it with a random seed
func (u *BaseUniverse) SettleWithRandomData() {
	if u.state.RunningMode == RunningStateManual || u.state.RunningMode == RunningStateFinished {
		u.controlCh <- u.clear
		u.controlCh <- func() {
			u.Settle(u.centered(u.catalog.Random(u.placementSize())))
		}
	}
}

//InverseCell inverses the cell state at point x, y
func (u *BaseUniverse) InverseCell(x int, y int) {
	if x < 0 || y < 0 || x >= u.options.Width || y >= u.options.Height {
		return
	}
	u.cells.Lock()
	u.cells.set.Toggle(life.Point{X: x, Y: y})
	u.state.LiveCells = u.cells.set.Len()
	u.cells.Unlock()
	u.refreshView()
}

//RegisterViewer registers the viewer - the universe will call the viewer when the state is changed
func (u *BaseUniverse) RegisterViewer(v Viewer) {
	u.views = append(u.views, v)
	v.Register(u)
}

//StateCh returns the channel with the universe's status updates
func (u *BaseUniverse) StateCh() chan Status {
	return u.stateCh
}

//Status returns current universe status represented by Status struct
func (u *BaseUniverse) Status() Status {
	return u.state.Status
}

//Options returns current universe configuration represented by Options struct
func (u *BaseUniverse) Options() Options {
	return u.options
}

//Cells returns a snapshot of the currently live cells
func (u *BaseUniverse) Cells() life.CellSet {
	u.cells.Lock()
	defer u.cells.Unlock()
	return u.cells.set.Clone()
}

//Run starts the universe simulation, returns immediately
func (u *BaseUniverse) Run() {
	u.controlCh <- u.run
}

//Stop stops the universe simulation, returns immediately
//the Status struct will be written the stateCh on finish
func (u *BaseUniverse) Stop() {
	u.controlCh <- u.stop
}

//Step do one simulation step, returns immediately
//the Status struct will be written to the stateCh on start and on finish
func (u *BaseUniverse) Step() {
	u.controlCh <- u.step
}

//Clear clears the universe (kill all cells and reset all counters), returns immediately
//the Status struct will be written to the stateCh on finish
func (u *BaseUniverse) Clear() {
	u.controlCh <- u.clear
}

//Close stops the main loop, close the channels, returns immediately
func (u *BaseUniverse) Close() {
	u.closeCh <- true
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (u *BaseUniverse) mainLoop() {
	var c = false
	for !c {
		select {
		case cmd := <-u.controlCh:
			cmd()
		case c = <-u.closeCh:

		}
	}
	close(u.closeCh)
	close(u.controlCh)
}

//placementSize is the grid dimension used to scale random seeds
func (u *BaseUniverse) placementSize() int {
	if u.options.Width < u.options.Height {
		return u.options.Width
	}
	return u.options.Height
}

//centered shifts the set so its bounding box midpoint lands on the grid center
//cells are not clipped, anything off-grid is simply not rendered
func (u *BaseUniverse) centered(cells life.CellSet) life.CellSet {
	b, ok := life.BoundingBox(cells)
	if !ok {
		return cells
	}
	dx := u.options.Width/2 - (b.MinX+b.MaxX)/2
	dy := u.options.Height/2 - (b.MinY+b.MaxY)/2
	return life.Translate(cells, dx, dy)
}

//switchRunningState switch the state of the universe to RunningState
//also writes the new state to the stateCh to signal upper control software
func (u *BaseUniverse) switchRunningState(to RunningState) {
	u.state.Lock()
	u.state.RunningMode = to
	st := u.state.Status
	u.state.Unlock()
	if u.stateCh != nil {
		u.stateCh <- st
	}
}

//run starts the universe simulation
//simulation will stop on Stop() calling or when the boundary conditions are reached
func (u *BaseUniverse) run() {
	go func() {
		u.switchRunningState(RunningStateRun)
		skipped := 0
		done := make(chan bool)
		defer close(done)
		for {
			mode := u.state.RunningMode
			if mode != RunningStateRun && mode != RunningStateStep {
				break
			}
			if skipped > u.options.MaxSkippedTicks {
				u.switchRunningState(RunningStateFinished)
				break
			}
			//skip the tick if the universe is still in the calculation mode
			if mode != RunningStateStep {
				skipped = 0
				u.controlCh <- func() {
					u.step()
					done <- true
				}
				<-done
			} else {
				skipped++
			}
			if u.options.Interval > 0 {
				time.Sleep(u.options.Interval)
			}
		}

	}()
}

//stop stops the universe running cycle
func (u *BaseUniverse) stop() {
	if u.state.RunningMode == RunningStateRun {
		u.switchRunningState(RunningStateManual)
	}
}

//step does the one generation calculation for the entire universe
func (u *BaseUniverse) step() {

	finished := false
	rm := u.state.RunningMode
	maxIter := u.options.MaxSteps
	u.state.IterationNum++
	defer func() {
		if finished {
			u.switchRunningState(RunningStateFinished)
		} else {
			u.switchRunningState(rm)
		}
		u.refreshView()
	}()

	if maxIter != 0 && u.state.IterationNum >= maxIter {
		finished = true
		return
	}
	u.switchRunningState(RunningStateStep)
	isAlive, changed := u.nextGeneration()
	if !isAlive || !changed {
		finished = true
	}
}

//clear clears the universe data, reset all counters
func (u *BaseUniverse) clear() {
	u.state.Lock()
	u.cells.Lock()

	u.state.IterationNum = 0
	u.state.LiveCells = 0
	u.cells.set = life.NewCellSet()
	u.state.RunningMode = RunningStateManual
	u.cells.Unlock()
	u.state.Unlock()
	u.switchRunningState(RunningStateManual)
	u.refreshView()

}

//nextGeneration advances the cell set by one generation via the engine
//the engine is pure: it reads the current set and returns a fresh one,
//so the lock only covers the swap bookkeeping
func (u *BaseUniverse) nextGeneration() (hasLiveCells bool, changed bool) {
	u.cells.Lock()
	defer u.cells.Unlock()
	start := time.Now()
	next := u.engine.Tick(u.cells.set)
	changed = !next.Equal(u.cells.set)
	u.cells.set = next
	u.state.LiveCells = next.Len()
	u.state.IterationTime = time.Since(start)
	return next.Len() > 0, changed
}

//refreshView calls Refresh event for all registered views
func (u *BaseUniverse) refreshView() {
	for _, v := range u.views {
		v.Refresh()
	}
}
