// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// package db provides the catalog data access layer for oadkit.
// This file contains the MySQL implementation of the catalog store.
package db // import "github.com/cadolab/oadkit/internal/db"

import (
	"fmt"

	"github.com/cadolab/oadkit/internal/model"
	"github.com/uptrace/bun"
	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

// MySQLStore is the MySQL implementation of the Store interface.
type MySQLStore struct {
	bun *bun.DB
}

// AddStudy saves a new study in the catalog.
func (s *MySQLStore) AddStudy(st *model.Study) (int, error) {
	id, err := AddStudyBun(s.bun, st)
	if err == nil {
		_ = s.LogAction("ADD_STUDY", fmt.Sprintf("study: %s", st.Name))
	}
	return id, err
}

// GetAllStudies retrieves all studies from the catalog.
func (s *MySQLStore) GetAllStudies() ([]model.Study, error) {
	return GetAllStudiesBun(s.bun)
}

// GetStudyByName retrieves a study by its unique name.
func (s *MySQLStore) GetStudyByName(name string) (*model.Study, error) {
	return GetStudyByNameBun(s.bun, name)
}

// DeleteStudy removes a study from the catalog by its name.
func (s *MySQLStore) DeleteStudy(name string) error {
	err := DeleteStudyBun(s.bun, name)
	if err == nil {
		_ = s.LogAction("DELETE_STUDY", fmt.Sprintf("study: %s", name))
	}
	return err
}

// GetAllAuditLogEntries retrieves the audit trail, most recent first.
func (s *MySQLStore) GetAllAuditLogEntries() ([]model.AuditLogEntry, error) {
	return GetAllAuditLogEntriesBun(s.bun)
}

// LogAction records an audit trail event.
func (s *MySQLStore) LogAction(action, details string) error {
	return LogActionBun(s.bun, action, details)
}

// ExportDataForBackup snapshots the whole catalog.
func (s *MySQLStore) ExportDataForBackup() (*model.BackupData, error) {
	return ExportDataForBackupBun(s.bun)
}

// ImportDataFromBackup wipes the catalog and restores the backup.
func (s *MySQLStore) ImportDataFromBackup(backup *model.BackupData) error {
	err := ImportDataFromBackupBun(s.bun, backup)
	if err == nil {
		_ = s.LogAction("IMPORT_BACKUP", fmt.Sprintf("studies: %d", len(backup.Studies)))
	}
	return err
}
