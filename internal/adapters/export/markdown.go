// Package export writes static character sheets to disk.
package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"herosheet/internal/adapters/filesystem"
	"herosheet/internal/application"
	"herosheet/internal/domain"
	"herosheet/internal/ports"
)

// MarkdownExporter implements ports.Exporter with Markdown files that
// start with a YAML front matter block.
type MarkdownExporter struct {
	dir    string
	logger *zap.Logger
}

// Ensure MarkdownExporter implements Exporter
var _ ports.Exporter = (*MarkdownExporter)(nil)

// NewMarkdownExporter creates an exporter writing into dir
func NewMarkdownExporter(dir string, logger *zap.Logger) *MarkdownExporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MarkdownExporter{dir: dir, logger: logger}
}

// IsAvailable reports whether an output directory is configured
func (e *MarkdownExporter) IsAvailable() bool {
	return strings.TrimSpace(e.dir) != ""
}

// Export writes <dir>/<slug>-<id>.md and returns its path
func (e *MarkdownExporter) Export(ctx context.Context, doc ports.ExportDocument) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &application.ExportError{Reason: "cancelled", Err: err}
	}
	if doc.Character == nil {
		return "", &application.ExportError{Reason: "no character given"}
	}

	dir := doc.Dir
	if dir == "" {
		dir = e.dir
	}
	if strings.TrimSpace(dir) == "" {
		return "", &application.ExportError{Reason: "no output directory configured"}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", &application.ExportError{Reason: "cannot create output directory", Err: err}
	}

	content, err := Render(doc)
	if err != nil {
		return "", &application.ExportError{Reason: "cannot render document", Err: err}
	}

	path := filepath.Join(dir, FileName(doc.Character))
	if err := filesystem.WriteFileAtomic(path, content, 0644); err != nil {
		e.logger.Warn("export failed", zap.String("path", path), zap.Error(err))
		return "", &application.ExportError{Reason: "cannot write file", Err: err}
	}

	e.logger.Info("character exported",
		zap.Int64("id", doc.Character.ID),
		zap.String("path", path),
	)
	return path, nil
}

// FileName returns the export file name of a character
func FileName(c *domain.Character) string {
	return fmt.Sprintf("%s-%d.md", Slug(c.DisplayName()), c.ID)
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug turns a display name into a lowercase file-name fragment
func Slug(name string) string {
	folded, _, err := transform.String(stripMarks, name)
	if err != nil {
		folded = name
	}

	var sb strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			dash = false
			continue
		}
		if !dash && sb.Len() > 0 {
			sb.WriteRune('-')
			dash = true
		}
	}

	slug := strings.TrimSuffix(sb.String(), "-")
	if slug == "" {
		return "character"
	}
	return slug
}

type frontMatter struct {
	ID                 int64             `yaml:"id"`
	Name               string            `yaml:"name"`
	Profession         string            `yaml:"profession,omitempty"`
	AdvancedProfession string            `yaml:"advanced_profession,omitempty"`
	Overall            map[string]string `yaml:"overall"`
	Items              int               `yaml:"magical_items"`
	Notes              int               `yaml:"notes"`
	ExportedAt         string            `yaml:"exported_at"`
}

// Render builds the document bytes
func Render(doc ports.ExportDocument) ([]byte, error) {
	c := doc.Character
	profiles := doc.Profiles
	if len(profiles) == 0 {
		profiles = application.Profiles(c)
	}
	exportedAt := doc.ExportedAt
	if exportedAt.IsZero() {
		exportedAt = time.Now()
	}

	fm := frontMatter{
		ID:                 c.ID,
		Name:               c.DisplayName(),
		Profession:         c.Profession,
		AdvancedProfession: c.AdvancedProfession,
		Overall:            make(map[string]string, len(profiles)),
		Items:              len(c.Items),
		Notes:              len(c.Notes),
		ExportedAt:         exportedAt.UTC().Format(time.RFC3339),
	}
	for _, p := range profiles {
		fm.Overall[p.Set.String()] = p.Overall.String()
	}

	header, err := yaml.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("failed to encode front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(header)
	buf.WriteString("---\n\n")

	fmt.Fprintf(&buf, "# %s\n\n", c.DisplayName())
	fmt.Fprintf(&buf, "- **Profession:** %s\n", orDash(c.Profession))
	fmt.Fprintf(&buf, "- **Advanced Profession:** %s\n", orDash(c.AdvancedProfession))

	for _, p := range profiles {
		writeProfile(&buf, p)
	}

	buf.WriteString("\n## Magical Items\n")
	if len(c.Items) == 0 {
		buf.WriteString("\n_None_\n")
	}
	for i := range c.Items {
		writeSource(&buf, &c.Items[i], c.Items[i].ModifierSet)
	}

	buf.WriteString("\n## Notes\n")
	if len(c.Notes) == 0 {
		buf.WriteString("\n_None_\n")
	}
	for i := range c.Notes {
		writeSource(&buf, &c.Notes[i], c.Notes[i].ModifierSet)
	}

	return buf.Bytes(), nil
}

func writeProfile(buf *bytes.Buffer, p domain.StatProfile) {
	fmt.Fprintf(buf, "\n## %s Stats\n\n", p.Set.Title())
	fmt.Fprintf(buf, "Overall rating: **%s** (%s)\n\n", p.Overall, p.Overall.Description())
	buf.WriteString("| Category | Kind | Base | Modifier | Display |\n")
	buf.WriteString("|---|---|---|---|---|\n")

	display := p.DisplayGrades()
	for i, axis := range p.Axes {
		mod := ""
		if p.Modifiers[i] != 0 {
			mod = fmt.Sprintf("%+d", p.Modifiers[i])
		}
		fmt.Fprintf(buf, "| %s | %s | %s | %s | %s |\n",
			axis, axis.Kind(), p.Base[i], mod, display[i])
	}
}

func writeSource(buf *bytes.Buffer, m domain.Modifiable, mods domain.ModifierSet) {
	fmt.Fprintf(buf, "\n### %s\n", orDash(m.Label()))
	if text := strings.TrimSpace(m.Text()); text != "" {
		fmt.Fprintf(buf, "\n%s\n", text)
	}

	var lines []string
	for _, set := range domain.StatSets() {
		values := mods.Modifiers(set)
		for _, cat := range set.Categories() {
			if v, ok := values[cat]; ok {
				lines = append(lines, fmt.Sprintf("- %s %s %+d", set.Title(), cat, v))
			}
		}
	}
	if len(lines) > 0 {
		buf.WriteString("\n")
		buf.WriteString(strings.Join(lines, "\n"))
		buf.WriteString("\n")
	}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
