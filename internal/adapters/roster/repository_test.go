package roster

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herosheet/internal/adapters/filesystem"
	"herosheet/internal/application"
	"herosheet/internal/domain"
)

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, error) { return nil, errors.New("disk on fire") }
func (brokenStore) Put(context.Context, string, []byte) error   { return errors.New("disk on fire") }
func (brokenStore) Close() error                                { return nil }

func newRepo(t *testing.T) (*Repository, *filesystem.Store) {
	t.Helper()
	store := filesystem.NewStore(t.TempDir())
	return NewRepository(store, "", nil), store
}

func TestLoadAll_EmptyStore(t *testing.T) {
	repo, _ := newRepo(t)

	require.NoError(t, repo.LoadAll(context.Background()))
	assert.Empty(t, repo.ListAll())
}

func TestPersistAndLoad(t *testing.T) {
	ctx := context.Background()
	repo, store := newRepo(t)

	c := domain.NewCharacter(42)
	c.Name = "Aldric"
	c.Profession = "Knight"
	require.NoError(t, c.SetGrade(domain.Heroic, domain.Stealth, domain.GradeA))
	item := domain.NewItem("Cloak", "Shadow-woven")
	require.NoError(t, item.AddModifier(domain.Heroic, domain.Stealth, 2))
	c.Items = append(c.Items, item)
	c.Notes = append(c.Notes, domain.NewNote("Oath", "Sworn to the crown"))

	require.NoError(t, repo.Add(c))
	require.NoError(t, repo.Persist(ctx))

	reloaded := NewRepository(store, "", nil)
	require.NoError(t, reloaded.LoadAll(ctx))

	got, err := reloaded.FindByID(42)
	require.NoError(t, err)
	assert.Equal(t, "Aldric", got.Name)
	assert.Equal(t, domain.GradeA, got.Heroic[domain.Stealth])
	assert.Equal(t, domain.GradeF, got.Meat[domain.Range])
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Heroic[domain.Stealth])
	require.Len(t, got.Notes, 1)
	assert.Equal(t, "Sworn to the crown", got.Notes[0].Content)
}

func TestLoadAll_NormalizesOldRecords(t *testing.T) {
	ctx := context.Background()
	repo, store := newRepo(t)

	blob := `[{
		"id": 7,
		"name": "Mira",
		"heroicStats": {"Damage Output": "B", "Charisma": "A", "Stealth": 3},
		"meatStats": {"Speed": "s"},
		"magicalItems": [{"name": "Ring", "heroicModifiers": {"Magic": 5, "Luck": 1}, "meatModifiers": {"Speed": "-1"}}]
	}]`
	require.NoError(t, store.Put(ctx, DefaultKey, []byte(blob)))
	require.NoError(t, repo.LoadAll(ctx))

	c, err := repo.FindByID(7)
	require.NoError(t, err)

	assert.Equal(t, domain.GradeB, c.Heroic[domain.DamageOutput])
	assert.Equal(t, domain.GradeF, c.Heroic[domain.Stealth], "non-letter grade becomes F")
	assert.Equal(t, domain.GradeF, c.Heroic[domain.Range], "missing category becomes F")
	assert.NotContains(t, c.Heroic, domain.Category("Charisma"))
	assert.Equal(t, domain.GradeS, c.Meat[domain.Speed])
	assert.Len(t, c.Heroic, len(domain.Heroic.Categories()))
	assert.Len(t, c.Meat, len(domain.Meat.Categories()))

	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Heroic[domain.Magic], "modifier clamped")
	assert.NotContains(t, c.Items[0].Heroic, domain.Category("Luck"))
	assert.Equal(t, -1, c.Items[0].Meat[domain.Speed])
	assert.NotNil(t, c.Notes)
}

func TestLoadAll_HugeModifiersKeepTheirSign(t *testing.T) {
	ctx := context.Background()
	repo, store := newRepo(t)

	blob := `[{"id": 9, "name": "Vex", "notes": [{"title": "Curse",
		"heroicModifiers": {"Magic": 1e300, "Stealth": -1e300},
		"meatModifiers": {"Speed": "1e300"}}]}]`
	require.NoError(t, store.Put(ctx, DefaultKey, []byte(blob)))
	require.NoError(t, repo.LoadAll(ctx))

	c, err := repo.FindByID(9)
	require.NoError(t, err)
	require.Len(t, c.Notes, 1)
	assert.Equal(t, 2, c.Notes[0].Heroic[domain.Magic])
	assert.Equal(t, -2, c.Notes[0].Heroic[domain.Stealth])
	assert.Equal(t, 2, c.Notes[0].Meat[domain.Speed])
}

func TestLoadAll_CorruptBlob(t *testing.T) {
	ctx := context.Background()
	repo, store := newRepo(t)
	require.NoError(t, store.Put(ctx, DefaultKey, []byte("{not json")))

	err := repo.LoadAll(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, application.ErrStorageUnavailable)
	assert.Empty(t, repo.ListAll())
}

func TestLoadAll_UnreadableStore(t *testing.T) {
	repo := NewRepository(brokenStore{}, "", nil)

	err := repo.LoadAll(context.Background())
	assert.ErrorIs(t, err, application.ErrStorageUnavailable)
	assert.Empty(t, repo.ListAll())
}

func TestLoadAll_SkipsDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	repo, store := newRepo(t)
	require.NoError(t, store.Put(ctx, DefaultKey, []byte(`[{"id":1,"name":"A"},{"id":1,"name":"B"}]`)))

	require.NoError(t, repo.LoadAll(ctx))
	chars := repo.ListAll()
	require.Len(t, chars, 1)
	assert.Equal(t, "A", chars[0].Name)
}

func TestPersist_Failure(t *testing.T) {
	repo := NewRepository(brokenStore{}, "", nil)
	require.NoError(t, repo.Add(domain.NewCharacter(1)))

	err := repo.Persist(context.Background())
	assert.ErrorIs(t, err, application.ErrStorageUnavailable)
}

func TestAdd_RejectsDuplicateID(t *testing.T) {
	repo, _ := newRepo(t)
	require.NoError(t, repo.Add(domain.NewCharacter(1)))

	err := repo.Add(domain.NewCharacter(1))
	assert.ErrorIs(t, err, application.ErrDuplicateID)
	assert.Len(t, repo.ListAll(), 1)
}

func TestRemove(t *testing.T) {
	repo, _ := newRepo(t)
	require.NoError(t, repo.Add(domain.NewCharacter(1)))
	require.NoError(t, repo.Add(domain.NewCharacter(2)))

	require.NoError(t, repo.Remove(1))
	_, err := repo.FindByID(1)
	assert.ErrorIs(t, err, application.ErrNotFound)
	assert.Len(t, repo.ListAll(), 1)

	assert.ErrorIs(t, repo.Remove(99), application.ErrNotFound)
}

func TestLooseInt(t *testing.T) {
	tests := []struct {
		in   string
		want looseInt
	}{
		{`2`, 2},
		{`-1.0`, -1},
		{`"1"`, 1},
		{`"x"`, 0},
		{`null`, 0},
		{`1e300`, math.MaxInt32},
		{`-1e300`, math.MinInt32},
		{`"NaN"`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var n looseInt
			require.NoError(t, n.UnmarshalJSON([]byte(tt.in)))
			assert.Equal(t, tt.want, n)
		})
	}
}
