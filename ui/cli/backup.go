// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/charmbracelet/log"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"

	"github.com/cadolab/oadkit/internal/db"
	"github.com/cadolab/oadkit/internal/i18n"
	"github.com/cadolab/oadkit/internal/model"
)

var restoreForce bool

func init() {
	restoreCmd.Flags().BoolVar(&restoreForce, "force", false, "Overwrite the current catalog without asking")
}

// backupCmd dumps the whole catalog into one compressed JSON file.
var backupCmd = &cobra.Command{
	Use:   "backup [output-file]",
	Short: "Create a compressed (zstd) JSON backup of the catalog",
	Long: `Dumps the entire catalog (studies and audit log) into a single,
Zstandard-compressed JSON file.

If an output file is specified, '.zst' is appended when missing. With
no argument a default name 'oadkit-backup-YYYY-MM-DD.json.zst' is used.
The file can also be used to migrate to a different database backend.

Examples:
  oadkit backup
  oadkit backup studies.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		var outputFile string
		if len(args) == 0 {
			outputFile = fmt.Sprintf("oadkit-backup-%s.json.zst", time.Now().Format("2006-01-02"))
		} else {
			outputFile = args[0]
			if !strings.HasSuffix(outputFile, ".zst") {
				outputFile += ".zst"
			}
		}
		fmt.Println(i18n.T("backup.starting"))
		data, err := db.ExportDataForBackup()
		if err != nil {
			log.Fatalf("could not export catalog: %v", err)
		}
		if err := writeCompressedBackup(outputFile, data); err != nil {
			log.Fatalf("could not write backup: %v", err)
		}
		fmt.Printf("%s: %s\n", i18n.T("catalog.exported"), outputFile)
	},
}

// restoreCmd replaces the catalog with the content of a backup file.
var restoreCmd = &cobra.Command{
	Use:   "restore <backup-file>",
	Short: "Restore the catalog from a backup file",
	Long: `Performs a full, destructive restore of the catalog from a
Zstandard-compressed JSON backup created with 'oadkit backup'. The
current content of the database is wiped first.

Example:
  oadkit restore oadkit-backup-2026-08-23.json.zst --force`,
	Args:    cobra.ExactArgs(1),
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		if !restoreForce {
			log.Fatalf("%s", i18n.T("restore.confirm"))
		}
		data, err := readCompressedBackup(args[0])
		if err != nil {
			log.Fatalf("could not read backup: %v", err)
		}
		if err := db.ImportDataFromBackup(data); err != nil {
			log.Fatalf("could not import backup: %v", err)
		}
		fmt.Println(i18n.T("catalog.imported"))
	},
}

// dbMaintainCmd runs the backend specific housekeeping.
var dbMaintainCmd = &cobra.Command{
	Use:     "db-maintain",
	Short:   "Run database maintenance (vacuum, analyze, optimize)",
	Args:    cobra.NoArgs,
	PreRunE: setupDefaultServices,
	Run: func(cmd *cobra.Command, args []string) {
		if err := db.RunDBMaintenance(appConfig.Database.Type, appConfig.Database.Dsn); err != nil {
			log.Fatalf("maintenance failed: %v", err)
		}
		fmt.Println(i18n.T("maintenance.done"))
	},
}

// writeCompressedBackup streams the JSON encoding through a zstd writer.
func writeCompressedBackup(filename string, data *model.BackupData) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	zstdWriter, err := zstd.NewWriter(file)
	if err != nil {
		return fmt.Errorf("could not create zstd writer: %w", err)
	}
	defer func() { _ = zstdWriter.Close() }()

	encoder := json.NewEncoder(zstdWriter)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("could not encode json to zstd writer: %w", err)
	}
	return nil
}

// readCompressedBackup decodes a zstd-compressed JSON backup file.
func readCompressedBackup(filename string) (*model.BackupData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	zstdReader, err := zstd.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("could not create zstd reader: %w", err)
	}
	defer zstdReader.Close()

	var backupData model.BackupData
	if err := json.NewDecoder(zstdReader).Decode(&backupData); err != nil {
		return nil, fmt.Errorf("could not decode json from zstd reader: %w", err)
	}
	return &backupData, nil
}
