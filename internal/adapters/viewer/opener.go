package viewer

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"herosheet/internal/ports"
)

// Opener implements ports.DocumentViewer for documents under one directory
type Opener struct {
	root string
	goos string
	run  func(name string, args ...string) error
}

// Ensure Opener implements DocumentViewer
var _ ports.DocumentViewer = (*Opener)(nil)

// NewOpener creates an opener restricted to documents below root
func NewOpener(root string) *Opener {
	return &Opener{
		root: root,
		goos: runtime.GOOS,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

// Open hands the document to the platform's default handler
func (o *Opener) Open(path string) error {
	uri, err := o.BuildURI(path)
	if err != nil {
		return err
	}

	switch o.goos {
	case "darwin":
		return o.run("open", uri)
	case "linux", "freebsd", "openbsd":
		return o.run("xdg-open", uri)
	case "windows":
		return o.run("cmd", "/c", "start", "", uri)
	default:
		return fmt.Errorf("unsupported operating system: %s", o.goos)
	}
}

// BuildURI constructs the file:// URI for a document below the root
func (o *Opener) BuildURI(path string) (string, error) {
	root, err := filepath.Abs(o.root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve export directory: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve document path: %w", err)
	}

	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", fmt.Errorf("failed to get relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("document is outside the export directory: %s", path)
	}

	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}
