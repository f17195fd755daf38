package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"ecoeats/internal/seed"
)

// generateSampleCatalog writes the built-in seed catalog to a JSON file so it
// can be edited and served back through CATALOG_FILE or uploaded to S3.
func main() {
	dataDir := "data/catalog"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	catalog := seed.Default()

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode catalog: %v", err)
	}

	filePath := filepath.Join(dataDir, "catalog.json")
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", filePath, err)
	}

	dishes := 0
	for _, r := range catalog.Restaurants {
		dishes += len(r.Dishes)
	}

	fmt.Printf("Created %s with %d restaurants and %d dishes\n", filePath, len(catalog.Restaurants), dishes)
}
