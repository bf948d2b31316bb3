package commands

import (
	"context"
	"errors"
	"testing"

	"herosheet/internal/application"
	"herosheet/internal/domain"
)

func TestDeleteCharacterCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
		errMsg  string
	}{
		{name: "valid id", id: "1700000000000", wantErr: false},
		{name: "empty id", id: "", wantErr: true, errMsg: "character ID is required"},
		{name: "not a number", id: "abc", wantErr: true, errMsg: "invalid character ID"},
		{name: "negative", id: "-4", wantErr: true, errMsg: "invalid character ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &DeleteCharacterCommand{ID: tt.id}
			checkErr(t, cmd.Validate(), tt.wantErr, tt.errMsg)
		})
	}
}

func TestDeleteCharacterCommand_Execute(t *testing.T) {
	repo := newRepo(t)

	res, err := NewDeleteCharacterCommand(repo, "1").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.DeletedID != 1 || len(repo.chars) != 0 {
		t.Errorf("character was not removed: %+v", repo.chars)
	}

	_, err = NewDeleteCharacterCommand(repo, "1").Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestUpdateCharacterCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		wantErr bool
		errMsg  string
	}{
		{name: "name", field: "name", wantErr: false},
		{name: "profession", field: "Profession", wantErr: false},
		{name: "advanced profession camel case", field: "advancedProfession", wantErr: false},
		{name: "advanced profession dashed", field: "advanced-profession", wantErr: false},
		{name: "unknown field", field: "level", wantErr: true, errMsg: "unknown field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &UpdateCharacterCommand{ID: "1", Field: tt.field}
			checkErr(t, cmd.Validate(), tt.wantErr, tt.errMsg)
		})
	}
}

func TestUpdateCharacterCommand_Execute(t *testing.T) {
	repo := newRepo(t)

	res, err := NewUpdateCharacterCommand(repo, "1", "advancedProfession", "Paladin").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.chars[0].AdvancedProfession != "Paladin" {
		t.Errorf("field not updated")
	}
	if res.OldValue != "" || res.NewValue != "Paladin" {
		t.Errorf("unexpected result %+v", res)
	}

	// same value is not persisted again
	if _, err := NewUpdateCharacterCommand(repo, "1", "advanced-profession", "Paladin").Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.persists != 1 {
		t.Errorf("expected one persist, got %d", repo.persists)
	}
}

func TestSetGradeCommand_Validate(t *testing.T) {
	tests := []struct {
		name     string
		set      string
		category string
		grade    string
		wantErr  bool
		errMsg   string
	}{
		{name: "valid", set: "heroic", category: "Stealth", grade: "A", wantErr: false},
		{name: "lowercase everything", set: "MEAT", category: "speed", grade: "sss", wantErr: false},
		{name: "unknown set", set: "mythic", category: "Stealth", grade: "A", wantErr: true, errMsg: "unknown stat set"},
		{name: "category not in set", set: "heroic", category: "Speed", grade: "A", wantErr: true, errMsg: "not a heroic category"},
		{name: "bad grade", set: "heroic", category: "Stealth", grade: "Z", wantErr: true, errMsg: "invalid grade"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &SetGradeCommand{ID: "1", Set: tt.set, Category: tt.category, Grade: tt.grade}
			checkErr(t, cmd.Validate(), tt.wantErr, tt.errMsg)
		})
	}
}

func TestSetGradeCommand_Execute(t *testing.T) {
	repo := newRepo(t)

	res, err := NewSetGradeCommand(repo, "1", "meat", "speed", "s").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := repo.chars[0].Meat[domain.Speed]; got != domain.GradeS {
		t.Errorf("got %s, want S", got)
	}
	if res.Old != domain.GradeF {
		t.Errorf("old grade %s, want F", res.Old)
	}
}

func TestShowProfileCommand_Execute(t *testing.T) {
	repo := newRepo(t)
	c := repo.chars[0]
	if err := c.SetGrade(domain.Heroic, domain.Stealth, domain.GradeA); err != nil {
		t.Fatal(err)
	}
	if err := c.Items[0].AddModifier(domain.Heroic, domain.Stealth, 2); err != nil {
		t.Fatal(err)
	}

	res, err := NewShowProfileCommand(repo, "1").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Profiles) != 2 {
		t.Fatalf("expected two profiles, got %d", len(res.Profiles))
	}

	heroic := res.Profiles[0]
	for i, cat := range heroic.Axes {
		if cat == domain.Stealth && heroic.Display[i] != 8 {
			t.Errorf("stealth display %d, want 8", heroic.Display[i])
		}
	}
	if heroic.Overall != domain.GradeE {
		t.Errorf("overall %s, want E from base grades only", heroic.Overall)
	}
}
