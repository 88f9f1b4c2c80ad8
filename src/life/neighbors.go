package life

//neighborOffsets are the eight Moore-neighborhood offsets
//all combinations of dx,dy in {-1,0,1} except (0,0)
var neighborOffsets = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

//Neighbors returns the eight cells at Chebyshev distance 1 from p
//the order is fixed: row by row, left to right
func Neighbors(p Point) [8]Point {
	var n [8]Point
	for i, o := range neighborOffsets {
		n[i] = Point{p.X + o.X, p.Y + o.Y}
	}
	return n
}

//LiveNeighbors counts how many of the eight neighbors of p are live
func LiveNeighbors(p Point, cells CellSet) int {
	count := 0
	for _, o := range neighborOffsets {
		if cells.Contains(Point{p.X + o.X, p.Y + o.Y}) {
			count++
		}
	}
	return count
}
