package views

import "herosheet/internal/domain"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// professions joins the two profession fields for list rows
func professions(c *domain.Character) string {
	switch {
	case c.Profession != "" && c.AdvancedProfession != "":
		return c.Profession + " / " + c.AdvancedProfession
	case c.Profession != "":
		return c.Profession
	case c.AdvancedProfession != "":
		return c.AdvancedProfession
	default:
		return "no profession"
	}
}

// Summary returns a one-line plain text description of a character
func Summary(c *domain.Character) string {
	heroic := domain.AverageGrade(c.Heroic)
	meat := domain.AverageGrade(c.Meat)
	return c.DisplayName() + " (" + professions(c) + ") Heroic " + heroic.String() + ", Meat " + meat.String()
}
