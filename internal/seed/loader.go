package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Loader fetches a catalog definition from a backing source.
type Loader interface {
	Load(ctx context.Context, path string) (Catalog, error)
}

// fileLoader implements Loader for reading catalog JSON files from disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalog loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a catalog JSON file from the local file system.
func (l *fileLoader) Load(ctx context.Context, path string) (Catalog, error) {
	l.logger.Info().Str("file", path).Msg("loading catalog file")

	data, err := os.ReadFile(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to read catalog file")
		return Catalog{}, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	catalog, err := parseCatalog(data)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to parse catalog file")
		return Catalog{}, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("restaurants", len(catalog.Restaurants)).
		Msg("catalog file loaded successfully")

	return catalog, nil
}

// parseCatalog decodes and sanity-checks a catalog document.
func parseCatalog(data []byte) (Catalog, error) {
	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return Catalog{}, fmt.Errorf("invalid catalog JSON: %w", err)
	}

	if len(catalog.Restaurants) == 0 {
		return Catalog{}, fmt.Errorf("catalog contains no restaurants")
	}
	for _, rest := range catalog.Restaurants {
		if rest.Name == "" {
			return Catalog{}, fmt.Errorf("catalog contains a restaurant without a name")
		}
		for _, dish := range rest.Dishes {
			if dish.Name == "" {
				return Catalog{}, fmt.Errorf("restaurant %q contains a dish without a name", rest.Name)
			}
			if dish.Price <= 0 {
				return Catalog{}, fmt.Errorf("dish %q has non-positive price %d", dish.Name, dish.Price)
			}
		}
	}

	return catalog, nil
}
