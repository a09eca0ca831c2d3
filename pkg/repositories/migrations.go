package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// readMigrations returns the contents of the .sql files in dir in name order.
func readMigrations(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".sql" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	migrations := make([]string, 0, len(names))
	for _, name := range names {
		migrationPath := filepath.Join(dir, name)
		migration, err := os.ReadFile(migrationPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}
		migrations = append(migrations, string(migration))
	}
	return migrations, nil
}

type execer func(ctx context.Context, sql string) error

func runMigrations(ctx context.Context, dir string, exec execer) error {
	migrations, err := readMigrations(dir)
	if err != nil {
		return err
	}
	for i, migration := range migrations {
		if err := exec(ctx, migration); err != nil {
			return fmt.Errorf("failed to execute migration %d: %v", i+1, err)
		}
	}
	return nil
}
