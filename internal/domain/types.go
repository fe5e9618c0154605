package domain

import "fmt"

// Move assigns a color to a single cell.
type Move struct {
	Color Color `json:"color"`
	Row   int   `json:"row"`
	Col   int   `json:"col"`
}

func (m Move) String() string {
	return fmt.Sprintf("%s at row %d col %d", m.Color, m.Row, m.Col)
}

// Violation is a tagged union over the three rule checkers. Kind selects
// which of the remaining fields are meaningful:
//
//	ViolationTriple:     Line, Index, Color, Positions (the three run cells)
//	ViolationSaturation: Line, Index, Color, Positions (every cell of Color)
//	ViolationDuplicate:  Line, Pair (earliest line index, repeating line index)
//
// Positions are indices along the line: column indices for a row hit, row
// indices for a column hit.
type Violation struct {
	Kind      ViolationKind `json:"kind"`
	Line      LineKind      `json:"line"`
	Index     int           `json:"index"`
	Color     Color         `json:"color,omitempty"`
	Positions []int         `json:"positions,omitempty"`
	Pair      [2]int        `json:"pair,omitempty"`
}

func (v *Violation) String() string {
	switch v.Kind {
	case ViolationTriple:
		return fmt.Sprintf("three %s in a row in %s %d at %v", v.Color, v.Line, v.Index, v.Positions)
	case ViolationSaturation:
		return fmt.Sprintf("too many %s in %s %d at %v", v.Color, v.Line, v.Index, v.Positions)
	case ViolationDuplicate:
		return fmt.Sprintf("%s %d repeats %s %d", v.Line, v.Pair[1], v.Line, v.Pair[0])
	default:
		return "unknown violation"
	}
}

// ForcedMove pairs a move with the violation proving the opposite color
// untenable at that cell.
type ForcedMove struct {
	Move    Move      `json:"move"`
	Because Violation `json:"because"`
}

// Solution is the outcome of a deductive solve: the final grid, the forced
// moves applied in order, and a terminal violation if applying one of them
// broke the board.
type Solution struct {
	Grid      Grid         `json:"grid"`
	Moves     []ForcedMove `json:"moves,omitempty"`
	Violation *Violation   `json:"violation,omitempty"`
}

// Hint describes a suggested move for the UI.
type Hint struct {
	Message string `json:"message,omitempty"`
	Move    Move   `json:"move"`
	Because string `json:"because,omitempty"`
}

// Puzzle is a persisted board with metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Grid       Grid       `json:"grid"`
	Fixed      [][]bool   `json:"fixed,omitempty"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}
