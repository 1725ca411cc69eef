// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"os/user"
	"time"

	"github.com/cadolab/oadkit/internal/model"
	"github.com/uptrace/bun"
)

// StudyModel maps the `studies` table for Bun queries.
type StudyModel struct {
	bun.BaseModel `bun:"table:studies"`
	ID            int     `bun:"id,pk,autoincrement"`
	Name          string  `bun:"name"`
	NPax          float64 `bun:"npax"`
	Range         float64 `bun:"range_m"`
	Mach          float64 `bun:"mach"`
	Arrangement   string  `bun:"arrangement"`

	MTOW        float64 `bun:"mtow"`
	OWE         float64 `bun:"owe"`
	Payload     float64 `bun:"payload"`
	FuelMission float64 `bun:"fuel_mission"`

	PayloadMax     float64 `bun:"payload_max"`
	RangePlMax     float64 `bun:"range_pl_max"`
	PayloadFuelMax float64 `bun:"payload_fuel_max"`
	RangeFuelMax   float64 `bun:"range_fuel_max"`
	RangeNoPl      float64 `bun:"range_no_pl"`

	CreatedAt string `bun:"created_at"`
}

// AuditLogModel maps the audit_log table.
type AuditLogModel struct {
	bun.BaseModel `bun:"table:audit_log"`
	ID            int    `bun:"id,pk,autoincrement"`
	Timestamp     string `bun:"timestamp"`
	Username      string `bun:"username"`
	Action        string `bun:"action"`
	Details       string `bun:"details"`
}

func studyModelToModel(m StudyModel) model.Study {
	return model.Study{
		ID:             m.ID,
		Name:           m.Name,
		NPax:           m.NPax,
		Range:          m.Range,
		Mach:           m.Mach,
		Arrangement:    m.Arrangement,
		MTOW:           m.MTOW,
		OWE:            m.OWE,
		Payload:        m.Payload,
		FuelMission:    m.FuelMission,
		PayloadMax:     m.PayloadMax,
		RangePlMax:     m.RangePlMax,
		PayloadFuelMax: m.PayloadFuelMax,
		RangeFuelMax:   m.RangeFuelMax,
		RangeNoPl:      m.RangeNoPl,
		CreatedAt:      m.CreatedAt,
	}
}

func studyToBunModel(s *model.Study) StudyModel {
	created := s.CreatedAt
	if created == "" {
		created = time.Now().UTC().Format(time.RFC3339)
	}
	return StudyModel{
		ID:             s.ID,
		Name:           s.Name,
		NPax:           s.NPax,
		Range:          s.Range,
		Mach:           s.Mach,
		Arrangement:    s.Arrangement,
		MTOW:           s.MTOW,
		OWE:            s.OWE,
		Payload:        s.Payload,
		FuelMission:    s.FuelMission,
		PayloadMax:     s.PayloadMax,
		RangePlMax:     s.RangePlMax,
		PayloadFuelMax: s.PayloadFuelMax,
		RangeFuelMax:   s.RangeFuelMax,
		RangeNoPl:      s.RangeNoPl,
		CreatedAt:      created,
	}
}

// AddStudyBun inserts a study and returns the new ID.
func AddStudyBun(bdb *bun.DB, s *model.Study) (int, error) {
	ctx := context.Background()

	m := studyToBunModel(s)
	m.ID = 0
	if _, err := bdb.NewInsert().Model(&m).Exec(ctx); err != nil {
		return 0, MapDBError(err)
	}
	s.ID = m.ID
	s.CreatedAt = m.CreatedAt
	return m.ID, nil
}

// GetAllStudiesBun returns all studies ordered by name.
func GetAllStudiesBun(bdb *bun.DB) ([]model.Study, error) {
	ctx := context.Background()

	var ms []StudyModel
	if err := bdb.NewSelect().Model(&ms).Order("name ASC").Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]model.Study, 0, len(ms))
	for _, m := range ms {
		out = append(out, studyModelToModel(m))
	}
	return out, nil
}

// GetStudyByNameBun returns the study with the given name, or ErrNotFound.
func GetStudyByNameBun(bdb *bun.DB, name string) (*model.Study, error) {
	ctx := context.Background()

	var m StudyModel
	err := bdb.NewSelect().Model(&m).Where("name = ?", name).Limit(1).Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s := studyModelToModel(m)
	return &s, nil
}

// DeleteStudyBun removes the study with the given name, or ErrNotFound.
func DeleteStudyBun(bdb *bun.DB, name string) error {
	ctx := context.Background()

	res, err := bdb.NewDelete().Model((*StudyModel)(nil)).Where("name = ?", name).Exec(ctx)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// LogActionBun records an audit trail event with the current OS user.
func LogActionBun(bdb *bun.DB, action, details string) error {
	ctx := context.Background()

	username := "unknown"
	if u, err := user.Current(); err == nil {
		username = u.Username
	}
	m := AuditLogModel{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Username:  username,
		Action:    action,
		Details:   details,
	}
	_, err := bdb.NewInsert().Model(&m).Exec(ctx)
	return err
}

// GetAllAuditLogEntriesBun returns the audit trail, most recent first.
func GetAllAuditLogEntriesBun(bdb *bun.DB) ([]model.AuditLogEntry, error) {
	ctx := context.Background()

	var ms []AuditLogModel
	if err := bdb.NewSelect().Model(&ms).Order("id DESC").Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]model.AuditLogEntry, 0, len(ms))
	for _, m := range ms {
		out = append(out, model.AuditLogEntry{
			ID:        m.ID,
			Timestamp: m.Timestamp,
			Username:  m.Username,
			Action:    m.Action,
			Details:   m.Details,
		})
	}
	return out, nil
}

// ExportDataForBackupBun snapshots the whole catalog.
func ExportDataForBackupBun(bdb *bun.DB) (*model.BackupData, error) {
	studies, err := GetAllStudiesBun(bdb)
	if err != nil {
		return nil, fmt.Errorf("failed to export studies: %w", err)
	}
	audit, err := GetAllAuditLogEntriesBun(bdb)
	if err != nil {
		return nil, fmt.Errorf("failed to export audit log: %w", err)
	}
	return &model.BackupData{Studies: studies, AuditLog: audit}, nil
}

// ImportDataFromBackupBun wipes the catalog and restores the backup in a
// single transaction.
func ImportDataFromBackupBun(bdb *bun.DB, backup *model.BackupData) error {
	ctx := context.Background()

	tx, err := bdb.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// Bun requires a WHERE clause for Update/Delete queries, so wipe via raw SQL.
	if _, err := ExecRaw(ctx, tx, "DELETE FROM studies"); err != nil {
		return fmt.Errorf("failed to clear studies: %w", err)
	}
	if _, err := ExecRaw(ctx, tx, "DELETE FROM audit_log"); err != nil {
		return fmt.Errorf("failed to clear audit log: %w", err)
	}

	for i := range backup.Studies {
		m := studyToBunModel(&backup.Studies[i])
		m.ID = 0
		if _, err := tx.NewInsert().Model(&m).Exec(ctx); err != nil {
			return fmt.Errorf("failed to restore study %q: %w", backup.Studies[i].Name, err)
		}
	}
	for _, e := range backup.AuditLog {
		m := AuditLogModel{Timestamp: e.Timestamp, Username: e.Username, Action: e.Action, Details: e.Details}
		if _, err := tx.NewInsert().Model(&m).Exec(ctx); err != nil {
			return fmt.Errorf("failed to restore audit log entry: %w", err)
		}
	}

	// Verify the restored row count before committing.
	var count int
	if err := QueryRawInto(ctx, tx, &count, "SELECT COUNT(*) FROM studies"); err != nil {
		return fmt.Errorf("failed to verify restore: %w", err)
	}
	if count != len(backup.Studies) {
		return fmt.Errorf("restore incomplete: %d of %d studies", count, len(backup.Studies))
	}

	return tx.Commit()
}
