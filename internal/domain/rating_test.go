package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func drawGrade(t *rapid.T, label string) Grade {
	return rapid.SampledFrom(Grades()).Draw(t, label)
}

func TestGradeToValue(t *testing.T) {
	tests := []struct {
		grade Grade
		want  int
	}{
		{GradeF, 1},
		{GradeE, 2},
		{GradeD, 3},
		{GradeC, 4},
		{GradeB, 5},
		{GradeA, 6},
		{GradeS, 7},
		{GradeSS, 8},
		{GradeSSS, 9},
	}

	for _, tt := range tests {
		t.Run(tt.grade.String(), func(t *testing.T) {
			got, err := GradeToValue(tt.grade)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGradeToValue_Invalid(t *testing.T) {
	for _, g := range []Grade{0, -1, 10, 42} {
		_, err := GradeToValue(g)
		if !errors.Is(err, ErrInvalidGrade) {
			t.Errorf("GradeToValue(%d) error = %v, want ErrInvalidGrade", int(g), err)
		}
	}
}

func TestValueToGrade_FallsBackToF(t *testing.T) {
	for _, v := range []int{0, -3, 10, 100} {
		assert.Equal(t, GradeF, ValueToGrade(v), "value %d", v)
	}
}

// Property: every grade survives a trip through its ordinal.
func TestGradeValueRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := drawGrade(rt, "grade")
		v, err := GradeToValue(g)
		if err != nil {
			rt.Fatal(err)
		}
		if got := ValueToGrade(v); got != g {
			rt.Fatalf("ValueToGrade(GradeToValue(%s)) = %s", g, got)
		}
	})
}

func TestApplyModifier(t *testing.T) {
	tests := []struct {
		name string
		base Grade
		sum  int
		want int
	}{
		{"no modifier", GradeC, 0, 4},
		{"positive", GradeA, 2, 8},
		{"negative", GradeB, -2, 3},
		{"saturates high", GradeSS, 2, 9},
		{"saturates low", GradeE, -2, 1},
		{"large positive sum", GradeF, 40, 9},
		{"large negative sum", GradeSSS, -40, 1},
		{"largest int sum", GradeA, math.MaxInt, 9},
		{"smallest int sum", GradeA, math.MinInt, 1},
		{"invalid base counts as F", Grade(0), 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyModifier(tt.base, tt.sum))
		})
	}
}

// Property: the display value stays on the scale for any stack of sources.
func TestApplyModifier_AlwaysInRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := drawGrade(rt, "grade")
		mods := rapid.SliceOfN(rapid.IntRange(MinModifier, MaxModifier), 0, 50).Draw(rt, "mods")
		sum := 0
		for _, m := range mods {
			sum += m
		}
		v := ApplyModifier(g, sum)
		if v < MinGradeValue || v > MaxGradeValue {
			rt.Fatalf("ApplyModifier(%s, %d) = %d, outside [1,9]", g, sum, v)
		}
	})
}

func TestApplyModifier_AnySumInRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := drawGrade(rt, "grade")
		sum := rapid.Int().Draw(rt, "sum")
		v := ApplyModifier(g, sum)
		if v < MinGradeValue || v > MaxGradeValue {
			rt.Fatalf("ApplyModifier(%s, %d) = %d, outside [1,9]", g, sum, v)
		}
		if sum > 0 && v < int(g) || sum < 0 && v > int(g) {
			rt.Fatalf("ApplyModifier(%s, %d) = %d moved against the sign of the sum", g, sum, v)
		}
	})
}

func TestAggregateModifiers(t *testing.T) {
	sword := NewItem("Sword", "")
	require.NoError(t, sword.AddModifier(Heroic, DamageOutput, 2))
	require.NoError(t, sword.AddModifier(Meat, FightingProwess, 1))

	cloak := NewItem("Cloak", "")
	require.NoError(t, cloak.AddModifier(Heroic, Stealth, 1))

	rumour := NewNote("Rumour", "")
	require.NoError(t, rumour.AddModifier(Heroic, DamageOutput, -1))

	sources := []Modifiable{&sword, &cloak, &rumour}

	assert.Equal(t, 1, AggregateModifiers(DamageOutput, sources, Heroic))
	assert.Equal(t, 1, AggregateModifiers(Stealth, sources, Heroic))
	assert.Equal(t, 0, AggregateModifiers(Magic, sources, Heroic))
	assert.Equal(t, 1, AggregateModifiers(FightingProwess, sources, Meat))
	assert.Equal(t, 0, AggregateModifiers(Stealth, sources, Meat), "heroic entries must not leak into meat")
	assert.Equal(t, 0, AggregateModifiers(DamageOutput, nil, Heroic))
}

// Property: the order of sources does not change the sum.
func TestAggregateModifiers_OrderIndependent(t *testing.T) {
	cats := Heroic.Categories()
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 12).Draw(rt, "sources")
		sources := make([]Modifiable, 0, n)
		for i := 0; i < n; i++ {
			item := NewItem("", "")
			for _, c := range cats {
				if rapid.Bool().Draw(rt, "has") {
					v := rapid.IntRange(MinModifier, MaxModifier).Draw(rt, "v")
					if err := item.AddModifier(Heroic, c, v); err != nil {
						rt.Fatal(err)
					}
				}
			}
			sources = append(sources, &item)
		}
		perm := rapid.Permutation(sources).Draw(rt, "perm")
		for _, c := range cats {
			a := AggregateModifiers(c, sources, Heroic)
			b := AggregateModifiers(c, perm, Heroic)
			if a != b {
				rt.Fatalf("%s: %d != %d after permutation", c, a, b)
			}
		}
	})
}

func TestAverageGrade(t *testing.T) {
	t.Run("all C", func(t *testing.T) {
		block := NewStatBlock(Heroic)
		for c := range block {
			block[c] = GradeC
		}
		assert.Equal(t, GradeC, AverageGrade(block))
	})

	t.Run("empty block", func(t *testing.T) {
		assert.Equal(t, GradeF, AverageGrade(StatBlock{}))
		assert.Equal(t, GradeF, AverageGrade(nil))
	})

	t.Run("rounds half up", func(t *testing.T) {
		block := StatBlock{Magic: GradeC, Stealth: GradeB} // 4.5
		assert.Equal(t, GradeB, AverageGrade(block))
	})

	t.Run("rounds down below half", func(t *testing.T) {
		block := StatBlock{Magic: GradeC, Stealth: GradeC, Range: GradeB} // 4.33
		assert.Equal(t, GradeC, AverageGrade(block))
	})

	t.Run("invalid entries count as F", func(t *testing.T) {
		block := StatBlock{Magic: Grade(0), Stealth: GradeE} // (1+2)/2 = 1.5
		assert.Equal(t, GradeE, AverageGrade(block))
	})
}

// Property: the average always lies between the lowest and highest grade.
func TestAverageGrade_Bounded(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		block := StatBlock{}
		lo, hi := GradeSSS, GradeF
		for _, c := range Meat.Categories() {
			g := drawGrade(rt, string(c))
			block[c] = g
			lo = min(lo, g)
			hi = max(hi, g)
		}
		avg := AverageGrade(block)
		if avg < lo || avg > hi {
			rt.Fatalf("AverageGrade = %s outside [%s, %s]", avg, lo, hi)
		}
	})
}

func TestBuildStatProfile_ModifiersOnlyAffectDisplay(t *testing.T) {
	c := NewCharacter(1)
	require.NoError(t, c.SetGrade(Heroic, DamageOutput, GradeA))

	item := NewItem("Greatsword", "")
	require.NoError(t, item.AddModifier(Heroic, DamageOutput, 2))
	c.Items = append(c.Items, item)

	before := AverageGrade(c.Heroic)
	p := BuildStatProfile(c, Heroic)

	require.Equal(t, DamageOutput, p.Axes[0])
	assert.Equal(t, GradeA, p.Base[0])
	assert.Equal(t, 2, p.Modifiers[0])
	assert.Equal(t, 8, p.Display[0])
	assert.Equal(t, GradeSS, p.DisplayGrades()[0])
	assert.Equal(t, before, p.Overall, "overall rating must use base grades")
	// (6 + 7*1) / 8 = 1.625 rounds to 2
	assert.Equal(t, GradeE, p.Overall)
}

func TestBuildStatProfile_AxisOrder(t *testing.T) {
	c := NewCharacter(1)
	p := BuildStatProfile(c, Meat)
	assert.Equal(t, Meat.Categories(), p.Axes)
	assert.Len(t, p.Display, 11)
	for _, v := range p.Display {
		assert.Equal(t, 1, v)
	}
}
