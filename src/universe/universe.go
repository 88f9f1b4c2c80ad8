package universe

import "sparselife/src/life"

type Universe interface {
	Status() Status
	Options() Options
	Cells() life.CellSet
	StateCh() chan Status
	SettlePattern(idOrName string)
	SettleRLE(body string) error
	SettleWithRandomData()
	Settle(cells life.CellSet)
	InverseCell(x int, y int)
	RegisterViewer(v Viewer)
	Run()
	Stop()
	Step()
	Clear()
	Close()
}
