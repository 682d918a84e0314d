package jobs

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const keepBackups = 14

// BackupCatalogFile snapshots the catalog file into backupDir with a
// timestamped name and prunes snapshots beyond the newest keepBackups.
// Category migration on the flat file is not crash-atomic, so a recent
// snapshot is the recovery point for a half-moved record.
func BackupCatalogFile(catalogPath, backupDir string) {
	data, err := os.ReadFile(catalogPath)
	if err != nil {
		log.Printf("🔥 Catalog backup skipped, cannot read %s: %v", catalogPath, err)
		return
	}

	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		log.Printf("🔥 Catalog backup failed, cannot create %s: %v", backupDir, err)
		return
	}

	name := fmt.Sprintf("catalog-%s.json", time.Now().Format("20060102-150405"))
	target := filepath.Join(backupDir, name)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		log.Printf("🔥 Catalog backup failed writing %s: %v", target, err)
		return
	}

	pruneBackups(backupDir)
	log.Printf("✅ Catalog backed up to %s", target)
}

func pruneBackups(backupDir string) {
	entries, err := filepath.Glob(filepath.Join(backupDir, "catalog-*.json"))
	if err != nil || len(entries) <= keepBackups {
		return
	}

	sort.Strings(entries)
	for _, stale := range entries[:len(entries)-keepBackups] {
		if err := os.Remove(stale); err != nil {
			log.Printf("Failed to prune old backup %s: %v", stale, err)
		}
	}
}
