package domain

import "fmt"

// GradeToValue returns the ordinal of a grade, 1 for F through 9 for SSS
func GradeToValue(g Grade) (int, error) {
	if !g.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidGrade, int(g))
	}
	return int(g), nil
}

// ValueToGrade maps an ordinal back to its grade. Values outside 1..9
// map to F so that display code never fails on a transient bad state.
func ValueToGrade(v int) Grade {
	g := Grade(v)
	if !g.Valid() {
		return GradeF
	}
	return g
}

// ApplyModifier adds a modifier sum to a base grade and saturates the
// result to 1..9. An invalid base counts as F.
func ApplyModifier(base Grade, modifierSum int) int {
	v, err := GradeToValue(base)
	if err != nil {
		v = MinGradeValue
	}
	modifierSum = clamp(modifierSum, -MaxGradeValue, MaxGradeValue)
	return clamp(v+modifierSum, MinGradeValue, MaxGradeValue)
}

// AggregateModifiers sums the modifiers every source defines for the
// category in the given set. Sources without an entry contribute nothing.
func AggregateModifiers(c Category, sources []Modifiable, set StatSet) int {
	sum := 0
	for _, src := range sources {
		if src == nil {
			continue
		}
		if v, ok := src.Modifiers(set)[c]; ok {
			sum += v
		}
	}
	return sum
}

// AverageGrade reduces a block to one grade: the mean of the base values
// rounded half up. An empty block yields F.
func AverageGrade(block StatBlock) Grade {
	n := len(block)
	if n == 0 {
		return GradeF
	}
	sum := 0
	for _, g := range block {
		v, err := GradeToValue(g)
		if err != nil {
			v = MinGradeValue
		}
		sum += v
	}
	// floor(sum/n + 1/2) without floating point
	return ValueToGrade((2*sum + n) / (2 * n))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
