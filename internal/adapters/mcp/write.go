package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"herosheet/internal/application/commands"
	"herosheet/internal/ports"
)

// RegisterWriteTools adds all character editing tools to the MCP server.
// Every tool persists the collection before returning.
func RegisterWriteTools(s *server.MCPServer, repo ports.CharacterRepository, exporter ports.Exporter) {
	s.AddTool(createTool(), createHandler(repo))
	s.AddTool(updateTool(), updateHandler(repo))
	s.AddTool(deleteTool(), deleteHandler(repo))
	s.AddTool(setGradeTool(), setGradeHandler(repo))
	s.AddTool(addItemTool(), addItemHandler(repo))
	s.AddTool(addNoteTool(), addNoteHandler(repo))
	s.AddTool(removeSourceTool(), removeSourceHandler(repo))
	s.AddTool(addModifierTool(), addModifierHandler(repo))
	s.AddTool(removeModifierTool(), removeModifierHandler(repo))
	s.AddTool(exportTool(), exportHandler(repo, exporter))
}

func idParam() mcp.ToolOption {
	return mcp.WithString("id",
		mcp.Description("Character id"),
		mcp.Required(),
	)
}

func sourceParams() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("kind",
			mcp.Description("Modifier source: item or note"),
			mcp.Enum("item", "note"),
			mcp.Required(),
		),
		mcp.WithNumber("index",
			mcp.Description("0-based position of the item or note"),
			mcp.Required(),
		),
	}
}

func setCategoryParams() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("set",
			mcp.Description("Stat set: heroic or meat"),
			mcp.Enum("heroic", "meat"),
			mcp.Required(),
		),
		mcp.WithString("category",
			mcp.Description("Stat category of the set, e.g. Stealth or Strength"),
			mcp.Required(),
		),
	}
}

func tool(name, description string, opts ...mcp.ToolOption) mcp.Tool {
	return mcp.NewTool(name, append([]mcp.ToolOption{mcp.WithDescription(description)}, opts...)...)
}

// --- create_character ---

func createTool() mcp.Tool {
	return tool("create_character",
		"Create a character with every grade set to F. The new id is returned.",
		mcp.WithString("name", mcp.Description("Character name"), mcp.Required()),
		mcp.WithString("profession", mcp.Description("Profession")),
		mcp.WithString("advanced_profession", mcp.Description("Advanced profession")),
	)
}

func createHandler(repo ports.CharacterRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewCreateCharacterCommand(repo,
			req.GetString("name", ""),
			req.GetString("profession", ""),
			req.GetString("advanced_profession", ""),
			nil,
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- update_character ---

func updateTool() mcp.Tool {
	return tool("update_character",
		"Change the name, profession or advanced profession of a character.",
		idParam(),
		mcp.WithString("field",
			mcp.Description("Field to change"),
			mcp.Enum(commands.Fields()...),
			mcp.Required(),
		),
		mcp.WithString("value", mcp.Description("New value"), mcp.Required()),
	)
}

func updateHandler(repo ports.CharacterRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewUpdateCharacterCommand(repo,
			req.GetString("id", ""),
			req.GetString("field", ""),
			req.GetString("value", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete_character ---

func deleteTool() mcp.Tool {
	return tool("delete_character",
		"Permanently delete a character with its items and notes.",
		idParam(),
	)
}

func deleteHandler(repo ports.CharacterRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewDeleteCharacterCommand(repo, req.GetString("id", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- set_grade ---

func setGradeTool() mcp.Tool {
	opts := append([]mcp.ToolOption{idParam()}, setCategoryParams()...)
	opts = append(opts, mcp.WithString("grade",
		mcp.Description("Grade letter: F, E, D, C, B, A, S, SS or SSS"),
		mcp.Required(),
	))
	return tool("set_grade", "Set the base grade of one stat category.", opts...)
}

func setGradeHandler(repo ports.CharacterRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSetGradeCommand(repo,
			req.GetString("id", ""),
			req.GetString("set", ""),
			req.GetString("category", ""),
			req.GetString("grade", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- add_item / add_note ---

func addItemTool() mcp.Tool {
	return tool("add_item",
		"Give a character a magical item without modifiers.",
		idParam(),
		mcp.WithString("name", mcp.Description("Item name"), mcp.Required()),
		mcp.WithString("description", mcp.Description("What the item does")),
	)
}

func addItemHandler(repo ports.CharacterRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddItemCommand(repo,
			req.GetString("id", ""),
			req.GetString("name", ""),
			req.GetString("description", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

func addNoteTool() mcp.Tool {
	return tool("add_note",
		"Attach a free-form note to a character.",
		idParam(),
		mcp.WithString("title", mcp.Description("Note title"), mcp.Required()),
		mcp.WithString("content", mcp.Description("Note text")),
	)
}

func addNoteHandler(repo ports.CharacterRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddNoteCommand(repo,
			req.GetString("id", ""),
			req.GetString("title", ""),
			req.GetString("content", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- remove_source ---

func removeSourceTool() mcp.Tool {
	return tool("remove_source",
		"Remove an item or note, together with its modifiers.",
		append([]mcp.ToolOption{idParam()}, sourceParams()...)...,
	)
}

func removeSourceHandler(repo ports.CharacterRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewRemoveSourceCommand(repo,
			req.GetString("id", ""),
			req.GetString("kind", ""),
			req.GetInt("index", -1),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- add_modifier / remove_modifier ---

func addModifierTool() mcp.Tool {
	opts := append([]mcp.ToolOption{idParam()}, sourceParams()...)
	opts = append(opts, setCategoryParams()...)
	opts = append(opts, mcp.WithNumber("value",
		mcp.Description("Signed adjustment between -2 and 2"),
		mcp.Min(-2),
		mcp.Max(2),
		mcp.Required(),
	))
	return tool("add_modifier",
		"Add a stat modifier to an item or note. A source holds at most one modifier per category.",
		opts...,
	)
}

func addModifierHandler(repo ports.CharacterRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddModifierCommand(repo,
			req.GetString("id", ""),
			req.GetString("kind", ""),
			req.GetInt("index", -1),
			req.GetString("set", ""),
			req.GetString("category", ""),
			req.GetInt("value", 0),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

func removeModifierTool() mcp.Tool {
	opts := append([]mcp.ToolOption{idParam()}, sourceParams()...)
	opts = append(opts, setCategoryParams()...)
	return tool("remove_modifier", "Remove a stat modifier from an item or note.", opts...)
}

func removeModifierHandler(repo ports.CharacterRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewRemoveModifierCommand(repo,
			req.GetString("id", ""),
			req.GetString("kind", ""),
			req.GetInt("index", -1),
			req.GetString("set", ""),
			req.GetString("category", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- export_character ---

func exportTool() mcp.Tool {
	return tool("export_character",
		"Export a character profile to a Markdown document and return its path.",
		idParam(),
		mcp.WithString("dir", mcp.Description("Output directory. Defaults to the configured export directory.")),
	)
}

func exportHandler(repo ports.CharacterRepository, exporter ports.Exporter) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewExportCommand(repo, exporter, req.GetString("id", ""), req.GetString("dir", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
