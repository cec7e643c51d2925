package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-f file storage path (JSON key-value backend)
//	-d sqlite database path (selects the SQLite backend)
//	-c/-config json file path with configs
//	-backup-interval backup worker interval (e.g., "1h", "30m"; 0 disables)
//	-backup-dir backup snapshot directory
func ParseFlags() *StructuredConfig {
	var fileStoragePath string
	var databaseDSN string
	var jsonConfigPath string
	var backupInterval time.Duration
	var backupDir string

	flag.StringVar(&fileStoragePath, "f", "", "File storage path")
	flag.StringVar(&databaseDSN, "d", "", "SQLite database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&backupInterval, "backup-interval", 0, "Backup interval (e.g., 1h, 30m; 0 disables)")
	flag.StringVar(&backupDir, "backup-dir", "", "Backup snapshot directory")

	flag.Parse()

	return &StructuredConfig{
		Storage: Storage{
			FilePath: fileStoragePath,
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			BackupInterval: backupInterval,
			BackupDir:      backupDir,
		},
		JSONFilePath: jsonConfigPath,
	}
}
