package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"herosheet/internal/application/commands"
	"herosheet/internal/domain"
	"herosheet/internal/ports"
)

// RegisterReadTools adds all read-only character tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.CharacterRepository, locale string) {
	s.AddTool(listTool(), listHandler(repo, locale))
	s.AddTool(showTool(), showHandler(repo))
	s.AddTool(gradesTool(), gradesHandler())
}

// --- list_characters ---

func listTool() mcp.Tool {
	return mcp.NewTool("list_characters",
		mcp.WithDescription("List every character with id, name, professions and overall ratings."),
		mcp.WithString("sort",
			mcp.Description("Sort field: name, profession or advancedProfession. Defaults to name."),
			mcp.Enum("name", "profession", "advancedProfession"),
		),
	)
}

func listHandler(repo ports.CharacterRepository, locale string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewListCharactersCommand(repo, req.GetString("sort", "name"), locale)
		chars, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(chars, formatCharacter)
	}
}

// --- show_character ---

func showTool() mcp.Tool {
	return mcp.NewTool("show_character",
		mcp.WithDescription("Show a character's stat profiles, magical items and notes."),
		mcp.WithString("id",
			mcp.Description("Character id"),
			mcp.Required(),
		),
	)
}

func showHandler(repo ports.CharacterRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewShowProfileCommand(repo, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		renderCharacter(&sb, result.Character, result.Profiles)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- grades ---

func gradesTool() mcp.Tool {
	return mcp.NewTool("grades",
		mcp.WithDescription("Describe the grade scale and the stat categories of each stat set."),
	)
}

func gradesHandler() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var sb strings.Builder
		for _, g := range domain.Grades() {
			v, _ := domain.GradeToValue(g)
			fmt.Fprintf(&sb, "%-3s %d  %s\n", g, v, g.Description())
		}
		fmt.Fprintf(&sb, "\nModifiers range from %+d to %+d per item or note.\n", domain.MinModifier, domain.MaxModifier)
		for _, set := range domain.StatSets() {
			fmt.Fprintf(&sb, "\n%s:\n", set.Title())
			for _, c := range set.Categories() {
				fmt.Fprintf(&sb, "  %s (%s)\n", c, c.Kind())
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatCharacter(c *domain.Character) string {
	return fmt.Sprintf("%d  %s  %s / %s  heroic %s  meat %s",
		c.ID, c.DisplayName(), orDash(c.Profession), orDash(c.AdvancedProfession),
		domain.AverageGrade(c.Heroic), domain.AverageGrade(c.Meat))
}

func renderCharacter(sb *strings.Builder, c *domain.Character, profiles []domain.StatProfile) {
	fmt.Fprintf(sb, "%d %s\n", c.ID, c.DisplayName())
	fmt.Fprintf(sb, "Profession: %s\nAdvanced profession: %s\n", orDash(c.Profession), orDash(c.AdvancedProfession))

	for _, p := range profiles {
		fmt.Fprintf(sb, "\n%s (overall %s)\n", p.Set.Title(), p.Overall)
		display := p.DisplayGrades()
		for i, cat := range p.Axes {
			fmt.Fprintf(sb, "  %-14s %-3s", cat, display[i])
			if p.Modifiers[i] != 0 {
				fmt.Fprintf(sb, " (base %s %+d)", p.Base[i], p.Modifiers[i])
			}
			sb.WriteByte('\n')
		}
	}

	renderSources(sb, "Magical items", domain.SourceItem, itemsOf(c))
	renderSources(sb, "Notes", domain.SourceNote, notesOf(c))
}

func itemsOf(c *domain.Character) []domain.Modifiable {
	out := make([]domain.Modifiable, len(c.Items))
	for i := range c.Items {
		out[i] = &c.Items[i]
	}
	return out
}

func notesOf(c *domain.Character) []domain.Modifiable {
	out := make([]domain.Modifiable, len(c.Notes))
	for i := range c.Notes {
		out[i] = &c.Notes[i]
	}
	return out
}

func renderSources(sb *strings.Builder, title string, kind domain.SourceKind, sources []domain.Modifiable) {
	fmt.Fprintf(sb, "\n%s:\n", title)
	if len(sources) == 0 {
		sb.WriteString("  none\n")
		return
	}
	for i, s := range sources {
		fmt.Fprintf(sb, "  [%s %d] %s", kind, i, s.Label())
		if text := s.Text(); text != "" {
			fmt.Fprintf(sb, ": %s", text)
		}
		sb.WriteByte('\n')
		for _, set := range domain.StatSets() {
			mods := s.Modifiers(set)
			for _, cat := range set.Categories() {
				if v, ok := mods[cat]; ok {
					fmt.Fprintf(sb, "      %s %s %+d\n", set.Title(), cat, v)
				}
			}
		}
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
