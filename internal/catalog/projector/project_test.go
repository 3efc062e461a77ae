package projector_test

import (
	"reflect"
	"testing"

	"golang.org/x/text/language"

	"catalog-manager/internal/catalog"
	"catalog-manager/internal/catalog/projector"
)

func names(items []catalog.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func fixture() []catalog.Item {
	return []catalog.Item{
		{ID: "1", Name: "Alpha", Description: "Whole milk", QualityVerified: true, IntegrityCompromised: false, OrderCount: 2},
		{ID: "2", Name: "Beta", Description: "Powdered formula", QualityVerified: false, IntegrityCompromised: true, OrderCount: 5},
	}
}

func allView(sort catalog.SortKey) catalog.ViewParams {
	return catalog.ViewParams{Quality: catalog.QualityAll, Integrity: catalog.IntegrityAll, Sort: sort}
}

func TestProjectScenarios(t *testing.T) {
	p := projector.New(language.English)

	t.Run("Order Count Desc", func(t *testing.T) {
		out := p.Project(fixture(), allView(catalog.SortByOrderCountDesc))
		if got := names(out.Items); !reflect.DeepEqual(got, []string{"Beta", "Alpha"}) {
			t.Errorf("expected [Beta Alpha], got %v", got)
		}
		if out.Shown != 2 || out.Total != 2 || out.Empty {
			t.Errorf("unexpected counts: %+v", out)
		}
	})

	t.Run("Verified Only", func(t *testing.T) {
		params := allView(catalog.SortByOrderCountDesc)
		params.Quality = catalog.QualityVerifiedOnly
		out := p.Project(fixture(), params)
		if got := names(out.Items); !reflect.DeepEqual(got, []string{"Alpha"}) {
			t.Errorf("expected [Alpha], got %v", got)
		}
		if out.Shown != 1 || out.Total != 2 {
			t.Errorf("expected 1/2, got %d/%d", out.Shown, out.Total)
		}
	})

	t.Run("Case Insensitive Search", func(t *testing.T) {
		params := allView(catalog.SortByName)
		params.SearchText = "alp"
		out := p.Project(fixture(), params)
		if got := names(out.Items); !reflect.DeepEqual(got, []string{"Alpha"}) {
			t.Errorf("expected [Alpha], got %v", got)
		}
	})

	t.Run("Search Matches Description", func(t *testing.T) {
		params := allView(catalog.SortByName)
		params.SearchText = "FORMULA"
		out := p.Project(fixture(), params)
		if got := names(out.Items); !reflect.DeepEqual(got, []string{"Beta"}) {
			t.Errorf("expected [Beta], got %v", got)
		}
	})

	t.Run("Surrounding Spaces Are Matched", func(t *testing.T) {
		params := allView(catalog.SortByName)
		params.SearchText = "alpha "
		if out := p.Project(fixture(), params); out.Shown != 0 {
			t.Errorf("expected no match for %q, got %v", params.SearchText, names(out.Items))
		}

		params.SearchText = "whole "
		out := p.Project(fixture(), params)
		if got := names(out.Items); !reflect.DeepEqual(got, []string{"Alpha"}) {
			t.Errorf("expected [Alpha] for %q, got %v", params.SearchText, got)
		}
	})

	t.Run("Whitespace Search Is No Filter", func(t *testing.T) {
		params := allView(catalog.SortByName)
		params.SearchText = " \t "
		if out := p.Project(fixture(), params); out.Shown != 2 {
			t.Errorf("expected 2 items, got %d", out.Shown)
		}
	})

	t.Run("Unverified And Standard", func(t *testing.T) {
		params := allView(catalog.SortByName)
		params.Quality = catalog.QualityUnverifiedOnly
		params.Integrity = catalog.IntegrityStandardOnly
		out := p.Project(fixture(), params)
		if out.Shown != 0 || out.Empty {
			t.Errorf("expected no match on a non-empty catalog, got %+v", out)
		}
	})

	t.Run("Compromised Only", func(t *testing.T) {
		params := allView(catalog.SortByName)
		params.Integrity = catalog.IntegrityCompromisedOnly
		out := p.Project(fixture(), params)
		if got := names(out.Items); !reflect.DeepEqual(got, []string{"Beta"}) {
			t.Errorf("expected [Beta], got %v", got)
		}
	})

	t.Run("Empty Catalog", func(t *testing.T) {
		out := p.Project(nil, catalog.DefaultViewParams())
		if !out.Empty || out.Total != 0 || out.Items == nil {
			t.Errorf("expected empty projection with non-nil items, got %+v", out)
		}
	})
}

func TestProjectColorCodingHasNoEffect(t *testing.T) {
	p := projector.New(language.English)
	on := allView(catalog.SortByName)
	on.ColorCoding = true
	off := on
	off.ColorCoding = false

	if !reflect.DeepEqual(p.Project(fixture(), on), p.Project(fixture(), off)) {
		t.Errorf("color coding changed the projection")
	}
}

func TestProjectIsPure(t *testing.T) {
	p := projector.New(language.English)
	items := []catalog.Item{
		{ID: "1", Name: "Zulu", OrderCount: 1},
		{ID: "2", Name: "alpha", OrderCount: 3},
		{ID: "3", Name: "Mike", OrderCount: 2},
	}
	before := append([]catalog.Item(nil), items...)

	first := p.Project(items, allView(catalog.SortByName))
	second := p.Project(items, allView(catalog.SortByName))

	if !reflect.DeepEqual(first, second) {
		t.Errorf("projection not deterministic: %v vs %v", first, second)
	}
	if !reflect.DeepEqual(items, before) {
		t.Errorf("input was mutated: %v", items)
	}
	if got := names(first.Items); !reflect.DeepEqual(got, []string{"alpha", "Mike", "Zulu"}) {
		t.Errorf("expected collated order, got %v", got)
	}
}

func TestProjectVietnameseCollation(t *testing.T) {
	p := projector.New(language.Vietnamese)
	items := []catalog.Item{
		{ID: "1", Name: "Bò"},
		{ID: "2", Name: "Ánh"},
		{ID: "3", Name: "An"},
	}
	out := p.Project(items, allView(catalog.SortByName))
	if got := names(out.Items); !reflect.DeepEqual(got, []string{"An", "Ánh", "Bò"}) {
		t.Errorf("expected [An Ánh Bò], got %v", got)
	}
}

func TestProjectStableTies(t *testing.T) {
	p := projector.New(language.English)
	items := []catalog.Item{
		{ID: "1", Name: "First", OrderCount: 1},
		{ID: "2", Name: "Second", OrderCount: 4},
		{ID: "3", Name: "Third", OrderCount: 1},
	}
	out := p.Project(items, allView(catalog.SortByOrderCountDesc))
	if got := names(out.Items); !reflect.DeepEqual(got, []string{"Second", "First", "Third"}) {
		t.Errorf("expected stable tie order, got %v", got)
	}
}

func TestParseLocale(t *testing.T) {
	tag, err := projector.ParseLocale("vi")
	if err != nil || tag != language.Vietnamese {
		t.Errorf("expected vi, got %v, %v", tag, err)
	}
	if _, err := projector.ParseLocale("not a tag!"); err == nil {
		t.Errorf("expected error for invalid tag")
	}
}
