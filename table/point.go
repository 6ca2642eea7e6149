package table

// Point is a position in the host buffer.
type Point struct {
	Row    int
	Column int
}

// Range is a pair of buffer positions. The type does not enforce
// Start <= End; callers supply ordered ranges.
type Range struct {
	Start Point
	End   Point
}

func (p Point) Equals(q Point) bool { return p == q }

// Compare orders points by row, then column.
func (p Point) Compare(q Point) int {
	switch {
	case p.Row < q.Row:
		return -1
	case p.Row > q.Row:
		return 1
	case p.Column < q.Column:
		return -1
	case p.Column > q.Column:
		return 1
	}
	return 0
}

func (r Range) Equals(s Range) bool { return r == s }

func (r Range) IsEmpty() bool { return r.Start == r.End }
