//go:build sqltest
// +build sqltest

package resultstore

import (
	"database/sql"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/DATA-DOG/go-txdb"
	_ "github.com/lib/pq" // PostgreSQL driver
)

func init() {
	txdb.Register("txdb", "postgres", "user=test password=test dbname=test host=/var/run/postgresql sslmode=disable")
}

// TestMigrations replays every up migration inside a rolled-back transaction
// to catch schema errors without mutating the database.
func TestMigrations(t *testing.T) {
	migrationsDir := "../../migrations"

	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		t.Fatalf("failed to read migrations directory: %v", err)
	}

	var upFiles []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".sql" && filepath.Ext(trimExt(e.Name())) != ".down" {
			upFiles = append(upFiles, e.Name())
		}
	}
	sort.Strings(upFiles)

	db, err := sql.Open("txdb", "migrations")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	for _, name := range upFiles {
		content, err := os.ReadFile(filepath.Join(migrationsDir, name))
		if err != nil {
			t.Fatalf("failed to read migration file %s: %v", name, err)
		}
		if _, err := tx.Exec(string(content)); err != nil {
			t.Errorf("migration %s failed: %v", name, err)
		}
	}
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
