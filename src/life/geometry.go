package life

//Box is the tightest axis-aligned bounds of a cell set
type Box struct {
	MinX int
	MaxX int
	MinY int
	MaxY int
}

//Width returns the horizontal extent of the box in cells
func (b Box) Width() int {
	return b.MaxX - b.MinX + 1
}

//Height returns the vertical extent of the box in cells
func (b Box) Height() int {
	return b.MaxY - b.MinY + 1
}

//BoundingBox computes the tightest box containing every live cell
//the second result is false for the empty set, the zero Box is then returned
func BoundingBox(cells CellSet) (Box, bool) {
	var b Box
	found := false
	for p := range cells {
		if !found {
			b = Box{p.X, p.X, p.Y, p.Y}
			found = true
			continue
		}
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	return b, found
}

//Translate shifts every cell by (dx, dy) and returns the shifted set
func Translate(cells CellSet, dx int, dy int) CellSet {
	t := make(CellSet, len(cells))
	for p := range cells {
		t.Add(Point{p.X + dx, p.Y + dy})
	}
	return t
}

//Center shifts the set so that the midpoint of its bounding box lands on
//the center of a square grid of the given size
//cells are not clipped to the grid, off-grid placement is the caller's concern
func Center(cells CellSet, gridSize int) CellSet {
	b, ok := BoundingBox(cells)
	if !ok {
		return NewCellSet()
	}
	center := gridSize / 2
	dx := center - (b.MinX+b.MaxX)/2
	dy := center - (b.MinY+b.MaxY)/2
	return Translate(cells, dx, dy)
}
