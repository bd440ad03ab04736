package fixtures

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/prototypes/internal/domain/entities"
	"github.com/ersonp/prototypes/internal/domain/ports"
)

var _ ports.DatasetSource = (*Loader)(nil)

func TestLoader_Load_Embedded(t *testing.T) {
	catalog, err := NewLoader("", nil).Load(t.Context())
	require.NoError(t, err)

	assert.Len(t, catalog.Kitties, 4)
	assert.Len(t, catalog.Clubs, 6)
	assert.Len(t, catalog.Mods, 4)
	assert.Len(t, catalog.Cakes, 6)
	assert.Len(t, catalog.Classrooms, 8)
	assert.Len(t, catalog.Breweries, 5)
	assert.Len(t, catalog.Instructors, 9)
	assert.Len(t, catalog.Cohorts, 4)
	assert.Len(t, catalog.Bosses, 3)
	assert.Len(t, catalog.Sidekicks, 6)
	assert.Len(t, catalog.Stars, 11)
	assert.Len(t, catalog.Constellations, 2)
	assert.Len(t, catalog.Weapons, 11)
	assert.Len(t, catalog.Characters, 4)
	assert.Len(t, catalog.Dinosaurs, 14)
	assert.Len(t, catalog.Humans, 13)
	assert.Len(t, catalog.Movies, 5)

	// Renamed fields and nulls
	assert.Equal(t, "dark chocolate", catalog.Cakes[0].Flavor)
	assert.Empty(t, catalog.Cakes[0].Filling)
	assert.Equal(t, entities.ProgramFrontEnd, catalog.Classrooms[0].Program)
	assert.Equal(t, []string{"Sam Neill", "Laura Dern", "Jeff Goldblum"}, catalog.Movies[0].Headliners)
	assert.InDelta(t, -1.46, catalog.Stars[0].VisualMagnitude, 1e-9)
}

func TestDocuments_CoverEveryDataset(t *testing.T) {
	for _, name := range entities.DatasetNames {
		_, ok := documents[name]
		assert.True(t, ok, "dataset %s has no fixture shape", name)
	}
}

func TestLoader_Load_Overrides(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		check    func(t *testing.T, c *entities.Catalog)
	}{
		{
			name:     "yaml override",
			filename: "kitties.yaml",
			content:  "kitties:\n  - name: Garfield\n    age: 40\n    color: orange\n",
			check: func(t *testing.T, c *entities.Catalog) {
				require.Len(t, c.Kitties, 1)
				assert.Equal(t, "Garfield", c.Kitties[0].Name)
			},
		},
		{
			name:     "json override",
			filename: "bosses.json",
			content:  `{"bosses": [{"name": "Hades", "sidekicks": ["Pain", "Panic"]}], "sidekicks": [{"name": "Pain", "boss": "Hades", "loyaltyToBoss": 2}]}`,
			check: func(t *testing.T, c *entities.Catalog) {
				require.Len(t, c.Bosses, 1)
				assert.Equal(t, "Hades", c.Bosses[0].Name)
				require.Len(t, c.Sidekicks, 1)
				assert.Equal(t, 2, c.Sidekicks[0].LoyaltyToBoss)
			},
		},
		{
			name:     "unrelated file ignored",
			filename: "notes.txt",
			content:  "not a dataset",
			check: func(t *testing.T, c *entities.Catalog) {
				assert.Len(t, c.Kitties, 4)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, tt.filename), []byte(tt.content), 0o644))

			catalog, err := NewLoader(dir, nil).Load(t.Context())
			require.NoError(t, err)
			tt.check(t, catalog)

			// Datasets without an override still come from the embedded files.
			assert.Len(t, catalog.Movies, 5)
		})
	}
}

func TestLoader_Load_YAMLTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mods.yaml"), []byte("mods:\n  - mod: 9\n    students: 10\n    instructors: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mods.json"), []byte(`{"mods": []}`), 0o644))

	catalog, err := NewLoader(dir, nil).Load(t.Context())
	require.NoError(t, err)
	require.Len(t, catalog.Mods, 1)
	assert.Equal(t, 9, catalog.Mods[0].Mod)
}

func TestLoader_Load_Errors(t *testing.T) {
	t.Run("unknown field in override", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "kitties.yaml"), []byte("kitties:\n  - name: Tiger\n    lives: 9\n"), 0o644))

		_, err := NewLoader(dir, nil).Load(t.Context())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading dataset kitties")
	})

	t.Run("missing dir", func(t *testing.T) {
		_, err := NewLoader(filepath.Join(t.TempDir(), "nope"), nil).Load(t.Context())
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("dir is a file", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))

		_, err := NewLoader(p, nil).Load(t.Context())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := NewLoader("", nil).Load(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestLoader_Source(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "ultima.json")
	require.NoError(t, os.WriteFile(override, []byte(`{}`), 0o644))
	loader := NewLoader(dir, nil)

	src, err := loader.Source(entities.DatasetUltima)
	require.NoError(t, err)
	assert.Equal(t, override, src)

	src, err = loader.Source(entities.DatasetCakes)
	require.NoError(t, err)
	assert.Equal(t, "embedded:data/cakes.yaml", src)

	_, err = loader.Source("pokemon")
	assert.Error(t, err)
}
