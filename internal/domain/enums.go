package domain

// Color is the state of a single cell: one of the two active colors, or empty.
type Color uint8

const (
	Empty Color = iota
	Red
	Blue
)

// Active reports whether c is one of the two playable colors.
func (c Color) Active() bool { return c == Red || c == Blue }

// Other returns the opposite active color. Calling it on Empty is a
// programming error.
func (c Color) Other() Color {
	switch c {
	case Red:
		return Blue
	case Blue:
		return Red
	}
	panic("domain: Other called on non-active color")
}

func (c Color) String() string {
	switch c {
	case Red:
		return "r"
	case Blue:
		return "b"
	default:
		return "."
	}
}

// LineKind distinguishes row hits from column hits in violation reports.
type LineKind uint8

const (
	LineRow LineKind = iota
	LineColumn
)

func (k LineKind) String() string {
	if k == LineColumn {
		return "column"
	}
	return "row"
}

// ViolationKind discriminates the Violation union.
type ViolationKind uint8

const (
	ViolationTriple     ViolationKind = iota + 1 // three equal cells in a row
	ViolationSaturation                          // one color over half a line
	ViolationDuplicate                           // two lines with the same shape
)

func (k ViolationKind) String() string {
	switch k {
	case ViolationTriple:
		return "triple"
	case ViolationSaturation:
		return "saturation"
	case ViolationDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)
