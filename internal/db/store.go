// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"github.com/cadolab/oadkit/internal/model"
)

// Store defines the interface for all catalog operations in oadkit.
// This allows for multiple database backends to be implemented.
type Store interface {
	// Study methods
	AddStudy(s *model.Study) (int, error)
	GetAllStudies() ([]model.Study, error)
	GetStudyByName(name string) (*model.Study, error)
	DeleteStudy(name string) error

	// Audit Log methods
	GetAllAuditLogEntries() ([]model.AuditLogEntry, error)
	LogAction(action string, details string) error

	// Backup methods
	ExportDataForBackup() (*model.BackupData, error)
	ImportDataFromBackup(backup *model.BackupData) error
}
