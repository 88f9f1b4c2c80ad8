package life

//Point identifies a single cell on the unbounded plane
//coordinates are signed, X is the column and Y is the row
type Point struct {
	X int
	Y int
}

//CellSet is the sparse set of currently live cells
//membership only: no ordering, no duplicates, no per-cell data
type CellSet map[Point]struct{}

//NewCellSet creates a CellSet containing the given points
func NewCellSet(points ...Point) CellSet {
	s := make(CellSet, len(points))
	for _, p := range points {
		s[p] = struct{}{}
	}
	return s
}

//Add marks the point as live
func (s CellSet) Add(p Point) {
	s[p] = struct{}{}
}

//Remove marks the point as dead
func (s CellSet) Remove(p Point) {
	delete(s, p)
}

//Toggle inverses the state of the point
func (s CellSet) Toggle(p Point) {
	if s.Contains(p) {
		s.Remove(p)
	} else {
		s.Add(p)
	}
}

//Contains reports whether the point is live
func (s CellSet) Contains(p Point) bool {
	_, ok := s[p]
	return ok
}

//Len returns the count of live cells
func (s CellSet) Len() int {
	return len(s)
}

//Clone returns an independent copy of the set
func (s CellSet) Clone() CellSet {
	c := make(CellSet, len(s))
	for p := range s {
		c[p] = struct{}{}
	}
	return c
}

//Equal reports whether both sets hold exactly the same cells
func (s CellSet) Equal(o CellSet) bool {
	if len(s) != len(o) {
		return false
	}
	for p := range s {
		if !o.Contains(p) {
			return false
		}
	}
	return true
}

//Points returns the cells as a slice, order is unspecified
func (s CellSet) Points() []Point {
	points := make([]Point, 0, len(s))
	for p := range s {
		points = append(points, p)
	}
	return points
}
