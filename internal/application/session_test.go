package application

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herosheet/internal/domain"
)

// memRepo is an in-memory CharacterRepository that counts persists
type memRepo struct {
	chars    []*domain.Character
	persists int
	failSave bool
	failLoad bool
}

func (r *memRepo) LoadAll(context.Context) error {
	if r.failLoad {
		r.chars = nil
		return &StorageError{Op: "load", Err: errors.New("unreadable")}
	}
	return nil
}

func (r *memRepo) Persist(context.Context) error {
	if r.failSave {
		return errors.New("quota exceeded")
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
	return nil, &NotFoundError{ID: id}
}

func (r *memRepo) Add(c *domain.Character) error {
	if _, err := r.FindByID(c.ID); err == nil {
		return ErrDuplicateID
	}
	r.chars = append(r.chars, c)
	return nil
}

func (r *memRepo) Remove(id int64) error {
	i := slices.IndexFunc(r.chars, func(c *domain.Character) bool { return c.ID == id })
	if i < 0 {
		return &NotFoundError{ID: id}
	}
	r.chars = slices.Delete(r.chars, i, i+1)
	return nil
}

func fixedClock() func() time.Time {
	t := time.UnixMilli(1_700_000_000_000)
	return func() time.Time { return t }
}

func seededSession(t *testing.T, ids ...int64) (*Session, *memRepo) {
	t.Helper()
	repo := &memRepo{}
	for _, id := range ids {
		repo.chars = append(repo.chars, domain.NewCharacter(id))
	}
	s := NewSession(repo, nil, WithClock(fixedClock()))
	require.NoError(t, s.Load(context.Background()))
	return s, repo
}

func TestSession_CreateSelectsAndPersists(t *testing.T) {
	s, repo := seededSession(t)

	c, err := s.Create(context.Background())
	require.NoError(t, err)

	assert.Same(t, c, s.Current())
	assert.Equal(t, int64(1_700_000_000_000), c.ID)
	assert.Equal(t, 1, repo.persists)
	assert.False(t, s.Dirty())
	assert.False(t, s.LastSaved().IsZero())

	second, err := s.Create(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, c.ID, second.ID, "ids stay unique within the same millisecond")
}

func TestSession_EditRequiresSelection(t *testing.T) {
	s, _ := seededSession(t, 1)

	err := s.Edit(func(c *domain.Character) error { c.Name = "x"; return nil })
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.False(t, s.Dirty())
}

func TestSession_EditMarksDirty(t *testing.T) {
	s, repo := seededSession(t, 1)
	require.NoError(t, s.Select(context.Background(), 1))

	require.NoError(t, s.Edit(func(c *domain.Character) error {
		c.Name = "Aldric"
		return nil
	}))
	assert.True(t, s.Dirty())
	assert.Equal(t, "Aldric", repo.chars[0].Name, "edits apply to the stored record")
}

func TestSession_FailedEditStaysClean(t *testing.T) {
	s, _ := seededSession(t, 1)
	require.NoError(t, s.Select(context.Background(), 1))

	err := s.Edit(func(c *domain.Character) error {
		return c.SetGrade(domain.Heroic, domain.Speed, domain.GradeA)
	})
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
	assert.False(t, s.Dirty())
}

func TestSession_SelectFlushesPreviousEdits(t *testing.T) {
	ctx := context.Background()
	s, repo := seededSession(t, 1, 2)

	require.NoError(t, s.Select(ctx, 1))
	require.NoError(t, s.Edit(func(c *domain.Character) error { c.Name = "First"; return nil }))
	require.Equal(t, 0, repo.persists)

	require.NoError(t, s.Select(ctx, 2))
	assert.Equal(t, 1, repo.persists)
	assert.False(t, s.Dirty())
	assert.Equal(t, int64(2), s.Current().ID)
}

func TestSession_SelectUnknownIsNoOp(t *testing.T) {
	ctx := context.Background()
	s, _ := seededSession(t, 1)
	require.NoError(t, s.Select(ctx, 1))

	err := s.Select(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int64(1), s.Current().ID)
}

func TestSession_SelectSwitchesEvenWhenFlushFails(t *testing.T) {
	ctx := context.Background()
	s, repo := seededSession(t, 1, 2)
	require.NoError(t, s.Select(ctx, 1))
	require.NoError(t, s.Edit(func(c *domain.Character) error { c.Name = "Kept"; return nil }))

	repo.failSave = true
	err := s.Select(ctx, 2)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Equal(t, int64(2), s.Current().ID)
	assert.True(t, s.Dirty(), "edits stay pending for the next flush")

	repo.failSave = false
	require.NoError(t, s.Flush(ctx))
	assert.False(t, s.Dirty())
}

func TestSession_DeleteCurrentClearsSelection(t *testing.T) {
	ctx := context.Background()
	s, repo := seededSession(t, 1, 2)
	require.NoError(t, s.Select(ctx, 1))

	require.NoError(t, s.Delete(ctx, 1))
	assert.Nil(t, s.Current())
	assert.Len(t, repo.chars, 1)
	assert.Equal(t, 1, repo.persists)

	err := s.Edit(func(c *domain.Character) error { return nil })
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestSession_DeleteOtherKeepsSelection(t *testing.T) {
	ctx := context.Background()
	s, _ := seededSession(t, 1, 2)
	require.NoError(t, s.Select(ctx, 1))

	require.NoError(t, s.Delete(ctx, 2))
	assert.Equal(t, int64(1), s.Current().ID)
}

func TestSession_DeleteUnknown(t *testing.T) {
	s, repo := seededSession(t, 1)

	assert.ErrorIs(t, s.Delete(context.Background(), 5), ErrNotFound)
	assert.Equal(t, 0, repo.persists)
}

func TestSession_FlushIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, repo := seededSession(t, 1)

	require.NoError(t, s.Flush(ctx))
	assert.Equal(t, 0, repo.persists, "nothing to flush")

	require.NoError(t, s.Select(ctx, 1))
	require.NoError(t, s.Edit(func(c *domain.Character) error { c.Profession = "Bard"; return nil }))
	require.NoError(t, s.Flush(ctx))
	require.NoError(t, s.Flush(ctx))
	assert.Equal(t, 1, repo.persists)
}

func TestSession_LoadFailureStartsEmpty(t *testing.T) {
	repo := &memRepo{failLoad: true, chars: []*domain.Character{domain.NewCharacter(1)}}
	s := NewSession(repo, nil)

	err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Empty(t, s.Characters(SortByName, "en"))
	assert.Nil(t, s.Current())
}

func TestSession_DeselectFlushes(t *testing.T) {
	ctx := context.Background()
	s, repo := seededSession(t, 1)
	require.NoError(t, s.Select(ctx, 1))
	require.NoError(t, s.Edit(func(c *domain.Character) error { c.Name = "Gone"; return nil }))

	require.NoError(t, s.Deselect(ctx))
	assert.Nil(t, s.Current())
	assert.Equal(t, 1, repo.persists)
}
