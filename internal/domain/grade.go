package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidGrade is returned when a letter is not one of the nine grades
var ErrInvalidGrade = errors.New("invalid grade")

// Grade is a letter tier on the F..SSS scale. The underlying value is the
// ordinal used by every rating computation.
type Grade int

const (
	GradeF Grade = iota + 1
	GradeE
	GradeD
	GradeC
	GradeB
	GradeA
	GradeS
	GradeSS
	GradeSSS
)

const (
	// MinGradeValue is the ordinal of GradeF
	MinGradeValue = int(GradeF)
	// MaxGradeValue is the ordinal of GradeSSS
	MaxGradeValue = int(GradeSSS)
)

var gradeLetters = map[Grade]string{
	GradeF:   "F",
	GradeE:   "E",
	GradeD:   "D",
	GradeC:   "C",
	GradeB:   "B",
	GradeA:   "A",
	GradeS:   "S",
	GradeSS:  "SS",
	GradeSSS: "SSS",
}

var gradeDescriptions = map[Grade]string{
	GradeF:   "Feeble",
	GradeE:   "Weak",
	GradeD:   "Below Average",
	GradeC:   "Average",
	GradeB:   "Capable",
	GradeA:   "Excellent",
	GradeS:   "Superhuman",
	GradeSS:  "Legendary",
	GradeSSS: "Mythic",
}

// Grades returns all grades ordered low to high
func Grades() []Grade {
	return []Grade{GradeF, GradeE, GradeD, GradeC, GradeB, GradeA, GradeS, GradeSS, GradeSSS}
}

// Valid reports whether g is one of the nine defined grades
func (g Grade) Valid() bool {
	return g >= GradeF && g <= GradeSSS
}

// String returns the grade letter
func (g Grade) String() string {
	if letter, ok := gradeLetters[g]; ok {
		return letter
	}
	return fmt.Sprintf("Grade(%d)", int(g))
}

// Description returns the display text for the grade
func (g Grade) Description() string {
	return gradeDescriptions[g]
}

// Raise returns the next grade up, saturating at SSS
func (g Grade) Raise() Grade {
	if !g.Valid() {
		return GradeF
	}
	if g == GradeSSS {
		return g
	}
	return g + 1
}

// Lower returns the next grade down, saturating at F
func (g Grade) Lower() Grade {
	if !g.Valid() || g == GradeF {
		return GradeF
	}
	return g - 1
}

// ParseGrade converts a letter into a Grade. Matching ignores case and
// surrounding whitespace.
func ParseGrade(s string) (Grade, error) {
	letter := strings.ToUpper(strings.TrimSpace(s))
	for _, g := range Grades() {
		if gradeLetters[g] == letter {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidGrade, s)
}
