// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"errors"
	"fmt"
	"testing"
)

func TestMapDBError_Nil(t *testing.T) {
	if MapDBError(nil) != nil {
		t.Fatalf("expected nil for nil input")
	}
}

func TestMapDBError_Duplicates(t *testing.T) {
	cases := []error{
		fmt.Errorf("UNIQUE constraint failed: studies.name"),
		fmt.Errorf("pq: duplicate key value violates unique constraint (SQLSTATE 23505)"),
		fmt.Errorf("Error 1062: Duplicate entry 'x' for key 'name'"),
	}
	for _, c := range cases {
		if !errors.Is(MapDBError(c), ErrDuplicate) {
			t.Fatalf("expected ErrDuplicate for %v", c)
		}
	}
}

func TestMapDBError_Passthrough(t *testing.T) {
	orig := fmt.Errorf("connection refused")
	if MapDBError(orig) != orig {
		t.Fatalf("expected passthrough for unrelated error")
	}
}
