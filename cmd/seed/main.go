// Command seed writes the embedded seed data into the configured local
// store, giving a fresh deployment its initial project list.
package main

import (
	"fmt"
	"log"

	"github.com/spf13/afero"

	"devfolio/config"
	"devfolio/persistence"
	"devfolio/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	store := persistence.NewLocalStore(
		afero.NewOsFs(),
		cfg.Storage.DataDir,
		cfg.Storage.Namespace,
		cfg.Storage.QuotaBytes,
		seed.Projects(),
	)

	projects := seed.Projects()
	if err := store.Save(projects, seed.Profile()); err != nil {
		log.Fatal("Failed to write seed data:", err)
	}

	for _, p := range projects {
		log.Printf("✓ %s (%s)", p.Title, p.Category)
	}

	fmt.Println("\nSeed data written!")
}
