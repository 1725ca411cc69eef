// Copyright (c) 2026 CADO Lab
// oadkit - conceptual aircraft design toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import "testing"

func TestTranslateEnglish(t *testing.T) {
	Init("en")
	if got := T("catalog.empty"); got != "The catalog is empty" {
		t.Fatalf("T(catalog.empty) = %q", got)
	}
}

func TestTranslateGerman(t *testing.T) {
	Init("de")
	if got := T("catalog.empty"); got != "Der Katalog ist leer" {
		t.Fatalf("T(catalog.empty) = %q", got)
	}
	// Reset for other tests.
	Init("en")
}

func TestUnknownIDFallsBack(t *testing.T) {
	Init("en")
	if got := T("no.such.message"); got != "no.such.message" {
		t.Fatalf("unknown ID should echo, got %q", got)
	}
}

func TestUninitializedDefaultsToEnglish(t *testing.T) {
	localizer = nil
	if got := T("design.saved"); got != "Study saved to catalog" {
		t.Fatalf("T(design.saved) = %q", got)
	}
}

func TestSetLang(t *testing.T) {
	SetLang("de")
	if got := T("design.saved"); got != "Studie im Katalog gespeichert" {
		t.Fatalf("after SetLang(de), T(design.saved) = %q", got)
	}
	SetLang("en")
}
