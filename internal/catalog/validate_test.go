package catalog_test

import (
	"errors"
	"testing"

	"catalog-manager/internal/catalog"
)

func TestValidateCreateInput(t *testing.T) {
	valid := catalog.CreateItemInput{Name: "Alpha", Description: "Fresh milk", ImageRef: "/img/a.jpg"}

	tests := []struct {
		name      string
		mutate    func(in *catalog.CreateItemInput)
		wantField string
	}{
		{"Valid", func(in *catalog.CreateItemInput) {}, ""},
		{"Empty Name", func(in *catalog.CreateItemInput) { in.Name = "" }, catalog.FieldName},
		{"Whitespace Name", func(in *catalog.CreateItemInput) { in.Name = "  \t" }, catalog.FieldName},
		{"Empty Description", func(in *catalog.CreateItemInput) { in.Description = "\n" }, catalog.FieldDescription},
		{"Empty Image", func(in *catalog.CreateItemInput) { in.ImageRef = " " }, catalog.FieldImageRef},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			err := catalog.ValidateCreateInput(in)

			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, catalog.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			var vErr *catalog.ValidationError
			if !errors.As(err, &vErr) || vErr.Field != tc.wantField {
				t.Errorf("expected field %q, got %v", tc.wantField, err)
			}
		})
	}
}

func TestParseViewTokens(t *testing.T) {
	if f, err := catalog.ParseQualityFilter("tested"); err != nil || f != catalog.QualityVerifiedOnly {
		t.Errorf("tested: got %v, %v", f, err)
	}
	if f, err := catalog.ParseIntegrityFilter("standard"); err != nil || f != catalog.IntegrityStandardOnly {
		t.Errorf("standard: got %v, %v", f, err)
	}
	if k, err := catalog.ParseSortKey("orders"); err != nil || k != catalog.SortByOrderCountDesc {
		t.Errorf("orders: got %v, %v", k, err)
	}

	_, err := catalog.ParseSortKey("price")
	if !errors.Is(err, catalog.ErrInvalidViewParam) {
		t.Errorf("expected ErrInvalidViewParam, got %v", err)
	}
	if _, err := catalog.ParseQualityFilter(""); err == nil {
		t.Errorf("expected error for empty quality token")
	}

	for _, k := range []catalog.SortKey{catalog.SortByName, catalog.SortByOrderCountDesc} {
		back, err := catalog.ParseSortKey(k.String())
		if err != nil || back != k {
			t.Errorf("sort token %q does not parse back: %v", k.String(), err)
		}
	}
}
