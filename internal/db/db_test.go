// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"errors"
	"testing"

	"github.com/cadolab/oadkit/internal/model"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	dsn := "file:test_" + t.Name() + "?mode=memory&cache=shared"
	s, err := NewStoreFromDSN("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	return s
}

func testStudy(name string) *model.Study {
	return &model.Study{
		Name:  name,
		NPax:  150,
		Range: 5.556e6,
		Mach:  0.78,
		MTOW:  77000,
		OWE:   45000,
	}
}

func TestAddAndGetStudy(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddStudy(testStudy("a320neo-like"))
	if err != nil {
		t.Fatalf("AddStudy failed: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected non-zero study id")
	}

	got, err := s.GetStudyByName("a320neo-like")
	if err != nil {
		t.Fatalf("GetStudyByName failed: %v", err)
	}
	if got.NPax != 150 || got.MTOW != 77000 {
		t.Fatalf("unexpected study data: %+v", got)
	}
	if got.CreatedAt == "" {
		t.Fatalf("expected created_at to be set")
	}
}

func TestAddStudy_DuplicateName(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.AddStudy(testStudy("dup")); err != nil {
		t.Fatalf("first AddStudy failed: %v", err)
	}
	_, err := s.AddStudy(testStudy("dup"))
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestGetStudyByName_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetStudyByName("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteStudy(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.AddStudy(testStudy("gone")); err != nil {
		t.Fatalf("AddStudy failed: %v", err)
	}
	if err := s.DeleteStudy("gone"); err != nil {
		t.Fatalf("DeleteStudy failed: %v", err)
	}
	if err := s.DeleteStudy("gone"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestGetAllStudies_SortedByName(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"zulu", "alpha", "mike"} {
		if _, err := s.AddStudy(testStudy(name)); err != nil {
			t.Fatalf("AddStudy(%s) failed: %v", name, err)
		}
	}
	all, err := s.GetAllStudies()
	if err != nil {
		t.Fatalf("GetAllStudies failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 studies, got %d", len(all))
	}
	if all[0].Name != "alpha" || all[2].Name != "zulu" {
		t.Fatalf("studies not sorted by name: %v", []string{all[0].Name, all[1].Name, all[2].Name})
	}
}

func TestAuditLog_RecordsActions(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.AddStudy(testStudy("logged")); err != nil {
		t.Fatalf("AddStudy failed: %v", err)
	}
	if err := s.DeleteStudy("logged"); err != nil {
		t.Fatalf("DeleteStudy failed: %v", err)
	}

	entries, err := s.GetAllAuditLogEntries()
	if err != nil {
		t.Fatalf("GetAllAuditLogEntries failed: %v", err)
	}
	if len(entries) < 2 {
		t.Fatalf("expected at least 2 audit entries, got %d", len(entries))
	}
	// Most recent first.
	if entries[0].Action != "DELETE_STUDY" {
		t.Fatalf("expected DELETE_STUDY first, got %s", entries[0].Action)
	}
}

func TestBackupRoundTrip(t *testing.T) {
	src := newTestStore(t)
	for _, name := range []string{"one", "two"} {
		if _, err := src.AddStudy(testStudy(name)); err != nil {
			t.Fatalf("AddStudy(%s) failed: %v", name, err)
		}
	}

	backup, err := src.ExportDataForBackup()
	if err != nil {
		t.Fatalf("ExportDataForBackup failed: %v", err)
	}
	if len(backup.Studies) != 2 {
		t.Fatalf("expected 2 studies in backup, got %d", len(backup.Studies))
	}

	dst := newTestStore(t)
	if err := dst.ImportDataFromBackup(backup); err != nil {
		t.Fatalf("ImportDataFromBackup failed: %v", err)
	}
	all, err := dst.GetAllStudies()
	if err != nil {
		t.Fatalf("GetAllStudies failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 restored studies, got %d", len(all))
	}
}
