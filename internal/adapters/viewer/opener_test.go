package viewer

import (
	"strings"
	"testing"
)

func TestBuildURI(t *testing.T) {
	tests := []struct {
		name    string
		root    string
		path    string
		wantURI string
		wantErr bool
	}{
		{
			name:    "document in root",
			root:    "/home/test/sheets",
			path:    "/home/test/sheets/aldric-1.md",
			wantURI: "file:///home/test/sheets/aldric-1.md",
		},
		{
			name:    "nested document",
			root:    "/home/test/sheets",
			path:    "/home/test/sheets/party/brenna-2.md",
			wantURI: "file:///home/test/sheets/party/brenna-2.md",
		},
		{
			name:    "spaces are escaped",
			root:    "/home/test/My Sheets",
			path:    "/home/test/My Sheets/aldric-1.md",
			wantURI: "file:///home/test/My%20Sheets/aldric-1.md",
		},
		{
			name:    "outside the root",
			root:    "/home/test/sheets",
			path:    "/home/test/other/aldric-1.md",
			wantErr: true,
		},
		{
			name:    "sibling with shared prefix",
			root:    "/home/test/sheets",
			path:    "/home/test/sheets-old/aldric-1.md",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOpener(tt.root)
			got, err := o.BuildURI(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("BuildURI() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.wantURI {
				t.Errorf("BuildURI() = %q, want %q", got, tt.wantURI)
			}
		})
	}
}

func TestOpen_PicksPlatformCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantErr  bool
	}{
		{goos: "darwin", wantName: "open"},
		{goos: "linux", wantName: "xdg-open"},
		{goos: "windows", wantName: "cmd"},
		{goos: "plan9", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			var gotName string
			var gotArgs []string
			o := NewOpener("/home/test/sheets")
			o.goos = tt.goos
			o.run = func(name string, args ...string) error {
				gotName, gotArgs = name, args
				return nil
			}

			err := o.Open("/home/test/sheets/aldric-1.md")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Open() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if gotName != tt.wantName {
				t.Errorf("command = %q, want %q", gotName, tt.wantName)
			}
			if last := gotArgs[len(gotArgs)-1]; !strings.HasPrefix(last, "file://") {
				t.Errorf("last argument = %q, want a file URI", last)
			}
		})
	}
}
