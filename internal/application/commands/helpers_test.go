package commands

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"herosheet/internal/application"
	"herosheet/internal/domain"
)

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

// memRepo is an in-memory CharacterRepository
type memRepo struct {
	chars    []*domain.Character
	persists int
	failSave bool
}

func (r *memRepo) LoadAll(context.Context) error { return nil }

func (r *memRepo) Persist(context.Context) error {
	if r.failSave {
		return &application.StorageError{Op: "save", Err: errors.New("read-only")}
	}
	r.persists++
	return nil
}

func (r *memRepo) ListAll() []*domain.Character { return slices.Clone(r.chars) }

func (r *memRepo) FindByID(id int64) (*domain.Character, error) {
	for _, c := range r.chars {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, &application.NotFoundError{ID: id}
}

func (r *memRepo) Add(c *domain.Character) error {
	if _, err := r.FindByID(c.ID); err == nil {
		return application.ErrDuplicateID
	}
	r.chars = append(r.chars, c)
	return nil
}

func (r *memRepo) Remove(id int64) error {
	i := slices.IndexFunc(r.chars, func(c *domain.Character) bool { return c.ID == id })
	if i < 0 {
		return &application.NotFoundError{ID: id}
	}
	r.chars = slices.Delete(r.chars, i, i+1)
	return nil
}

// newRepo returns a repo holding one character with id 1, an item and a note
func newRepo(t *testing.T) *memRepo {
	t.Helper()
	c := domain.NewCharacter(1)
	c.Name = "Aldric"
	c.Items = append(c.Items, domain.NewItem("Cloak", "Shadow-woven"))
	c.Notes = append(c.Notes, domain.NewNote("Oath", "Sworn to the crown"))
	return &memRepo{chars: []*domain.Character{c}}
}

func checkErr(t *testing.T, err error, wantErr bool, errMsg string) {
	t.Helper()
	if wantErr {
		if err == nil {
			t.Errorf("expected error containing %q, got nil", errMsg)
			return
		}
		if !contains(err.Error(), errMsg) {
			t.Errorf("expected error containing %q, got %q", errMsg, err.Error())
		}
		return
	}
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
