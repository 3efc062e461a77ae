package projector

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"

	"catalog-manager/internal/catalog"
)

// Project filters and sorts items according to params. Filters run in a fixed
// order (search, quality, integrity) before the sort. items is never
// modified; the result is a new slice. Sorting is stable, so items with equal
// keys keep their relative input order.
func (p *Projector) Project(items []catalog.Item, params catalog.ViewParams) catalog.Projection {
	out := catalog.Projection{
		Total: len(items),
		Empty: len(items) == 0,
	}
	if out.Empty {
		out.Items = []catalog.Item{}
		return out
	}

	// collate.Collator and cases.Caser hold scratch buffers, so each call
	// gets its own.
	fold := cases.Fold()
	// Blank text disables the search; otherwise the text is matched as typed,
	// surrounding spaces included.
	searching := strings.TrimSpace(params.SearchText) != ""
	term := fold.String(params.SearchText)

	result := make([]catalog.Item, 0, len(items))
	for _, item := range items {
		if searching && !matchesSearch(fold, item, term) {
			continue
		}
		if !matchesQuality(item, params.Quality) {
			continue
		}
		if !matchesIntegrity(item, params.Integrity) {
			continue
		}
		result = append(result, item)
	}

	switch params.Sort {
	case catalog.SortByOrderCountDesc:
		slices.SortStableFunc(result, func(a, b catalog.Item) int {
			return cmp.Compare(b.OrderCount, a.OrderCount)
		})
	default:
		col := collate.New(p.tag)
		slices.SortStableFunc(result, func(a, b catalog.Item) int {
			return col.CompareString(a.Name, b.Name)
		})
	}

	out.Items = result
	out.Shown = len(result)
	return out
}

func matchesSearch(fold cases.Caser, item catalog.Item, term string) bool {
	return strings.Contains(fold.String(item.Name), term) ||
		strings.Contains(fold.String(item.Description), term)
}

func matchesQuality(item catalog.Item, f catalog.QualityFilter) bool {
	switch f {
	case catalog.QualityVerifiedOnly:
		return item.QualityVerified
	case catalog.QualityUnverifiedOnly:
		return !item.QualityVerified
	default:
		return true
	}
}

func matchesIntegrity(item catalog.Item, f catalog.IntegrityFilter) bool {
	switch f {
	case catalog.IntegrityCompromisedOnly:
		return item.IntegrityCompromised
	case catalog.IntegrityStandardOnly:
		return !item.IntegrityCompromised
	default:
		return true
	}
}
