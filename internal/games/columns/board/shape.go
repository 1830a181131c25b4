package board

// Cell is a (row, col) pair. It is used both for offsets relative to a
// piece's local frame and for absolute grid coordinates.
type Cell struct {
	Row, Col int
}

// Add returns the cell translated by other.
func (c Cell) Add(other Cell) Cell {
	return Cell{Row: c.Row + other.Row, Col: c.Col + other.Col}
}

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindO Kind = iota
	KindL
	KindJ
	KindZ
	KindT
	KindS
	KindI
)

// String returns the conventional letter of the shape.
func (k Kind) String() string {
	switch k {
	case KindO:
		return "O"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindZ:
		return "Z"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindI:
		return "I"
	default:
		return "?"
	}
}

// Shape is the set of four cells a piece occupies in its local frame.
type Shape [4]Cell

// Shapes holds the spawn orientation of every tetromino, indexed by Kind.
var Shapes = [...]Shape{
	KindO: {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	KindL: {{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	KindJ: {{0, 1}, {1, 1}, {2, 1}, {2, 0}},
	KindZ: {{0, 1}, {1, 0}, {1, 1}, {2, 0}},
	KindT: {{0, 1}, {1, 0}, {1, 1}, {2, 1}},
	KindS: {{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	KindI: {{0, 1}, {1, 1}, {2, 1}, {3, 1}},
}

// Bounds returns the minimum and maximum row and column of the shape.
func (s Shape) Bounds() (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = s[0].Row, s[0].Row
	minCol, maxCol = s[0].Col, s[0].Col
	for _, c := range s[1:] {
		minRow = min(minRow, c.Row)
		maxRow = max(maxRow, c.Row)
		minCol = min(minCol, c.Col)
		maxCol = max(maxCol, c.Col)
	}
	return minRow, maxRow, minCol, maxCol
}

// Rotate turns the shape 90 degrees inside a square frame whose side is the
// larger extent of the bounding box. Every shape uses the same frame rule, so
// asymmetric pieces drift inside the frame from one rotation to the next.
func (s Shape) Rotate() Shape {
	minRow, maxRow, minCol, maxCol := s.Bounds()
	size := max(maxRow-minRow, maxCol-minCol)

	var rotated Shape
	for i, c := range s {
		rotated[i] = Cell{Row: c.Col, Col: size - c.Row}
	}
	return rotated
}

// Piece is the active falling tetromino.
type Piece struct {
	Kind   Kind
	Shape  Shape
	Color  int
	Offset Cell // grid position of the local frame origin; Row may be negative
}

// Cells returns the absolute grid coordinates of the piece.
func (p Piece) Cells() [4]Cell {
	return place(p.Shape, p.Offset)
}

// Covers reports whether the piece occupies grid cell (r, c).
func (p Piece) Covers(r, c int) bool {
	for _, cell := range p.Cells() {
		if cell.Row == r && cell.Col == c {
			return true
		}
	}
	return false
}

// place translates a shape to absolute coordinates.
func place(s Shape, offset Cell) [4]Cell {
	var cells [4]Cell
	for i, c := range s {
		cells[i] = c.Add(offset)
	}
	return cells
}
