package editor

import (
	"os"
	"testing"
)

func fakeEnv(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestEdit_RoundTrip(t *testing.T) {
	o := &Opener{lookup: fakeEnv(map[string]string{"EDITOR": "true --flag"})}

	edit, err := o.Edit("Sworn to the crown\n")
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	cmd := edit.Command()
	if len(cmd.Args) != 3 || cmd.Args[1] != "--flag" {
		t.Errorf("expected editor flags to be kept, got %v", cmd.Args)
	}

	path := cmd.Args[len(cmd.Args)-1]
	if err := os.WriteFile(path, []byte("Sworn to the empire\n\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	text, err := edit.Finish()
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if text != "Sworn to the empire" {
		t.Errorf("got %q, want %q", text, "Sworn to the empire")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected scratch file to be removed")
	}
}

func TestFindEditor_PrefersEditorOverVisual(t *testing.T) {
	o := &Opener{lookup: fakeEnv(map[string]string{"EDITOR": "hx", "VISUAL": "code"})}
	if got := o.findEditor(); got != "hx" {
		t.Errorf("got %q, want hx", got)
	}

	o = &Opener{lookup: fakeEnv(map[string]string{"VISUAL": "code"})}
	if got := o.findEditor(); got != "code" {
		t.Errorf("got %q, want code", got)
	}
}
