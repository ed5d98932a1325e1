package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gamechanger/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_Builtin(t *testing.T) {
	catalog, err := NewCatalogRepository("").Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seed.DemoCatalog(), catalog)
}

func TestCatalogRepository_YAMLRoundTrip(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	want := seed.NewFactory(seed.Options{Athletes: 2, PostsPerAthlete: 2, Seed: 3, Now: now}).BuildCatalog()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, WriteCatalogYAML(path, want))

	got, err := NewCatalogRepository(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Athletes, len(want.Athletes))

	last := got.Athletes[len(got.Athletes)-1]
	require.NotNil(t, last.Posts[0].PostedAt)
	assert.True(t, want.Athletes[len(want.Athletes)-1].Posts[0].PostedAt.Equal(*last.Posts[0].PostedAt))
	assert.Equal(t, want.Athletes[0].Username, got.Athletes[0].Username)
}

func TestCatalogRepository_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	body := `{"athletes":[{"id":"a","name":"A","username":"@a","posts":[{"id":1,"type":"image","timestamp":"1 day ago"}]}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	catalog, err := NewCatalogRepository(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog.Athletes, 1)
	assert.Equal(t, "1 day ago", catalog.Athletes[0].Posts[0].Timestamp)
}

func TestCatalogRepository_Unavailable(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	txt := filepath.Join(dir, "catalog.txt")
	require.NoError(t, os.WriteFile(txt, []byte("athletes: []"), 0o644))

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.yaml")},
		{"malformed file", bad},
		{"unknown extension", txt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalogRepository(tt.path).Load(context.Background())
			assert.Error(t, err)
		})
	}
}
