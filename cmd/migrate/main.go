package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5"

	"github.com/monsieur-akhir/dental-ecommerce-sub001/internal/config"
	"github.com/monsieur-akhir/dental-ecommerce-sub001/internal/db"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("[db] %v", err)
	}
	defer pool.Close()

	root, err := projectRoot()
	if err != nil {
		log.Fatalf("project root not found: %v", err)
	}

	migrations := []string{
		"001_create_categories.sql",
		"002_create_users.sql",
		"003_create_products.sql",
		"004_create_orders.sql",
		"005_create_wishlist.sql",
		"100_data.sql",
	}

	successes := 0
	for _, name := range migrations {
		sql, err := os.ReadFile(filepath.Join(root, "migrations", name))
		if err != nil {
			log.Fatalf("read %s: %v", name, err)
		}
		// simple protocol so multi-statement files run in one Exec
		if _, err := pool.Exec(ctx, string(sql), pgx.QueryExecModeSimpleProtocol); err != nil {
			log.Printf("migration %s failed: %v", name, err)
			continue
		}
		log.Printf("applied %s", name)
		successes++
	}
	log.Printf("applied %d of %d migrations", successes, len(migrations))
}

func projectRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return wd, nil
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			return "", os.ErrNotExist
		}
		wd = parent
	}
}
