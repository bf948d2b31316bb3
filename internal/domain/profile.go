package domain

// StatProfile is everything a view needs to draw one stat set of a character
type StatProfile struct {
	Set       StatSet
	Axes      []Category
	Base      []Grade
	Modifiers []int
	Display   []int
	Overall   Grade
}

// BuildStatProfile computes display values and the overall rating of one
// stat set. Display values include item and note modifiers; the overall
// rating is taken from base grades only.
func BuildStatProfile(c *Character, set StatSet) StatProfile {
	axes := set.Categories()
	block := c.StatBlock(set)
	sources := c.Modifiables()

	p := StatProfile{
		Set:       set,
		Axes:      axes,
		Base:      block.Ordered(set),
		Modifiers: make([]int, len(axes)),
		Display:   make([]int, len(axes)),
		Overall:   AverageGrade(block),
	}
	for i, cat := range axes {
		p.Modifiers[i] = AggregateModifiers(cat, sources, set)
		p.Display[i] = ApplyModifier(p.Base[i], p.Modifiers[i])
	}
	return p
}

// DisplayGrades returns the display values as grades
func (p StatProfile) DisplayGrades() []Grade {
	out := make([]Grade, len(p.Display))
	for i, v := range p.Display {
		out[i] = ValueToGrade(v)
	}
	return out
}
