package domain

import "fmt"

// Family tags the puzzle variant a record carries.
type Family int

const (
	FamilySudoku Family = iota
	FamilyCrossword
)

func (f Family) String() string {
	switch f {
	case FamilyCrossword:
		return "crossword"
	default:
		return "sudoku"
	}
}

// ParseFamily converts a string to a Family.
func ParseFamily(s string) (Family, error) {
	switch s {
	case "sudoku":
		return FamilySudoku, nil
	case "crossword":
		return FamilyCrossword, nil
	default:
		return FamilySudoku, fmt.Errorf("unknown family: %q", s)
	}
}

func (f Family) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *Family) UnmarshalText(b []byte) error {
	v, err := ParseFamily(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Difficulty labels target puzzle generation and grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// ParseDifficulty converts a string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	default:
		return Medium, fmt.Errorf("unknown difficulty: %q", s)
	}
}

func (d Difficulty) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Difficulty) UnmarshalText(b []byte) error {
	v, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Severity is a closed, ordered enumeration: any unrecognized value
// compares above SeverityError and therefore always blocks a pass.
type Severity int

const (
	SeverityWarning Severity = iota + 1
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return fmt.Sprintf("SEVERITY(%d)", int(s))
	}
}

// Blocks reports whether a finding of this severity forbids shipping.
func (s Severity) Blocks() bool { return s >= SeverityError }

func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Severity) UnmarshalText(b []byte) error {
	switch string(b) {
	case "WARNING":
		*s = SeverityWarning
	case "ERROR":
		*s = SeverityError
	default:
		return fmt.Errorf("unknown severity: %q", string(b))
	}
	return nil
}

// Direction orients a crossword slot.
type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "across"
}

func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Direction) UnmarshalText(b []byte) error {
	switch string(b) {
	case "across":
		*d = Across
	case "down":
		*d = Down
	default:
		return fmt.Errorf("unknown direction: %q", string(b))
	}
	return nil
}
