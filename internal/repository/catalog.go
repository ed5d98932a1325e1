package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gamechanger/internal/models"
	"gamechanger/internal/seed"

	"gopkg.in/yaml.v3"
)

// CatalogRepository loads the read-only demo catalog.
type CatalogRepository interface {
	Load(ctx context.Context) (*models.Catalog, error)
}

// NewCatalogRepository returns the file catalog at path, or the built-in one when path is empty.
func NewCatalogRepository(path string) CatalogRepository {
	if strings.TrimSpace(path) == "" {
		return builtinCatalogRepository{}
	}
	return &fileCatalogRepository{path: path}
}

type builtinCatalogRepository struct{}

func (builtinCatalogRepository) Load(_ context.Context) (*models.Catalog, error) {
	return seed.DemoCatalog(), nil
}

type fileCatalogRepository struct {
	path string
}

// Load reads the file on every call so edits show up without a restart.
func (r *fileCatalogRepository) Load(ctx context.Context) (*models.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", r.path, err)
	}

	var catalog models.Catalog
	switch strings.ToLower(filepath.Ext(r.path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &catalog)
	case ".json":
		err = json.Unmarshal(data, &catalog)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", filepath.Ext(r.path))
	}
	if err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", r.path, err)
	}

	return &catalog, nil
}

// WriteCatalogYAML writes catalog to path in the format fileCatalogRepository reads.
func WriteCatalogYAML(path string, catalog *models.Catalog) error {
	data, err := yaml.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog %s: %w", path, err)
	}
	return nil
}
