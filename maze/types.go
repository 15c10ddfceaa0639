// Package maze defines core types, symbols, and sentinel errors
// for the maze state space.
package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrMissingStart indicates no start marker was found.
	ErrMissingStart = errors.New("maze: start marker not found")
	// ErrDuplicateStart indicates more than one start marker was found.
	ErrDuplicateStart = errors.New("maze: more than one start marker")
	// ErrMissingGoal indicates no goal marker was found.
	ErrMissingGoal = errors.New("maze: goal marker not found")
	// ErrDuplicateGoal indicates more than one goal marker was found.
	ErrDuplicateGoal = errors.New("maze: more than one goal marker")
	// ErrUnknownSymbol indicates a cell symbol outside the configured alphabet.
	ErrUnknownSymbol = errors.New("maze: unknown cell symbol")
	// ErrUnknownHeading indicates a heading name that ParseHeading does not know.
	ErrUnknownHeading = errors.New("maze: unknown heading")
	// ErrBadMarker indicates a start or goal outside the grid or on a wall.
	ErrBadMarker = errors.New("maze: marker must be an open in-bounds cell")
	// ErrBadSymbols indicates a Symbols value that reuses a rune for two roles.
	ErrBadSymbols = errors.New("maze: symbols must be distinct")
)

// Edge costs of the movement model.
const (
	// StepCost is the cost of moving one cell forward.
	StepCost int64 = 1
	// TurnCost is the cost of a 90-degree turn in place.
	TurnCost int64 = 1000
)

// Heading is one of the four compass directions. The numeric value is
// used as the innermost dimension of dense state tables.
type Heading uint8

const (
	// Up moves toward row 0.
	Up Heading = iota
	// Right moves toward increasing X.
	Right
	// Down moves toward increasing Y.
	Down
	// Left moves toward column 0.
	Left
)

// NumHeadings is the number of distinct headings.
const NumHeadings = 4

// Headings lists every heading in table order.
var Headings = [NumHeadings]Heading{Up, Right, Down, Left}

var headingOffsets = [NumHeadings][2]int{
	Up:    {0, -1},
	Right: {1, 0},
	Down:  {0, 1},
	Left:  {-1, 0},
}

var headingNames = [NumHeadings]string{"up", "right", "down", "left"}

// Offset returns the (dx, dy) of one forward step. Y grows downward.
func (h Heading) Offset() (dx, dy int) {
	o := headingOffsets[h&3]
	return o[0], o[1]
}

// Rotations returns the two headings reachable by a single 90-degree turn.
func (h Heading) Rotations() [2]Heading {
	return [2]Heading{(h + 3) & 3, (h + 1) & 3}
}

// Opposite returns the reverse heading. It is never a one-move successor.
func (h Heading) Opposite() Heading { return (h + 2) & 3 }

// String returns the lower-case name of h.
func (h Heading) String() string {
	if int(h) < NumHeadings {
		return headingNames[h]
	}
	return fmt.Sprintf("Heading(%d)", uint8(h))
}

// ParseHeading accepts "up", "right", "down", "left", their compass
// aliases ("north", "east", "south", "west", "n", "e", "s", "w") and the
// arrows "^", ">", "v", "<". Matching is case-insensitive.
func ParseHeading(s string) (Heading, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "north", "n", "^":
		return Up, nil
	case "right", "east", "e", ">":
		return Right, nil
	case "down", "south", "s", "v":
		return Down, nil
	case "left", "west", "w", "<":
		return Left, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHeading, s)
}

// Position is a cell coordinate: X is the column, Y is the row.
type Position struct {
	X, Y int
}

// String formats p as "x,y".
func (p Position) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// State is a node of the search space: where we stand and which way we face.
type State struct {
	Position
	Heading Heading
}

// At builds a State from coordinates and a heading.
func At(x, y int, h Heading) State {
	return State{Position: Position{X: x, Y: y}, Heading: h}
}

// String formats s as "x,y/heading".
func (s State) String() string { return s.Position.String() + "/" + s.Heading.String() }

// Symbols configures the textual alphabet understood by Parse.
// Open may list several runes; every one of them is a walkable cell.
type Symbols struct {
	Wall  rune
	Open  []rune
	Start rune
	Goal  rune
	// StartHeading is the heading assigned to the start marker.
	StartHeading Heading
}

// DefaultSymbols returns the conventional alphabet:
// '#' wall, '.' open, 'S' start facing Right, 'E' goal.
func DefaultSymbols() Symbols {
	return Symbols{
		Wall:         '#',
		Open:         []rune{'.'},
		Start:        'S',
		Goal:         'E',
		StartHeading: Right,
	}
}

// Validate reports ErrBadSymbols if any rune plays two roles.
func (s Symbols) Validate() error {
	seen := map[rune]string{}
	check := func(r rune, role string) error {
		if prev, ok := seen[r]; ok {
			return fmt.Errorf("%w: %q used for %s and %s", ErrBadSymbols, r, prev, role)
		}
		seen[r] = role
		return nil
	}
	if err := check(s.Wall, "wall"); err != nil {
		return err
	}
	if err := check(s.Start, "start"); err != nil {
		return err
	}
	if err := check(s.Goal, "goal"); err != nil {
		return err
	}
	for _, r := range s.Open {
		if err := check(r, "open"); err != nil {
			return err
		}
	}
	if int(s.StartHeading) >= NumHeadings {
		return fmt.Errorf("%w: start heading %d", ErrUnknownHeading, s.StartHeading)
	}
	return nil
}
