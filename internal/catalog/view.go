package catalog

import "fmt"

// QualityFilter selects items by their QualityVerified flag.
type QualityFilter int

const (
	QualityAll QualityFilter = iota
	QualityVerifiedOnly
	QualityUnverifiedOnly
)

// IntegrityFilter selects items by their IntegrityCompromised flag.
type IntegrityFilter int

const (
	IntegrityAll IntegrityFilter = iota
	IntegrityCompromisedOnly
	IntegrityStandardOnly
)

// SortKey orders a projection.
type SortKey int

const (
	SortByName SortKey = iota
	SortByOrderCountDesc
)

// ViewParams parameterize a projection. The zero value is the default view
// except for ColorCoding; use DefaultViewParams.
type ViewParams struct {
	SearchText string
	Quality    QualityFilter
	Integrity  IntegrityFilter
	Sort       SortKey
	// ColorCoding is cosmetic and never affects which items are shown.
	ColorCoding bool
}

// DefaultViewParams returns the view a new session starts with.
func DefaultViewParams() ViewParams {
	return ViewParams{
		Quality:     QualityAll,
		Integrity:   IntegrityAll,
		Sort:        SortByName,
		ColorCoding: true,
	}
}

var (
	qualityTokens = map[QualityFilter]string{
		QualityAll:            "all",
		QualityVerifiedOnly:   "verified",
		QualityUnverifiedOnly: "unverified",
	}
	integrityTokens = map[IntegrityFilter]string{
		IntegrityAll:             "all",
		IntegrityCompromisedOnly: "compromised",
		IntegrityStandardOnly:    "standard",
	}
	sortTokens = map[SortKey]string{
		SortByName:           "name",
		SortByOrderCountDesc: "orders",
	}
)

func (f QualityFilter) String() string {
	if s, ok := qualityTokens[f]; ok {
		return s
	}
	return fmt.Sprintf("QualityFilter(%d)", int(f))
}

func (f IntegrityFilter) String() string {
	if s, ok := integrityTokens[f]; ok {
		return s
	}
	return fmt.Sprintf("IntegrityFilter(%d)", int(f))
}

func (k SortKey) String() string {
	if s, ok := sortTokens[k]; ok {
		return s
	}
	return fmt.Sprintf("SortKey(%d)", int(k))
}

// ParseQualityFilter parses a wire token ("all", "verified", "unverified").
// "tested" and "untested" are accepted as aliases.
func ParseQualityFilter(s string) (QualityFilter, error) {
	switch s {
	case "all":
		return QualityAll, nil
	case "verified", "tested":
		return QualityVerifiedOnly, nil
	case "unverified", "untested":
		return QualityUnverifiedOnly, nil
	}
	return QualityAll, &ViewParamError{Param: "quality", Value: s}
}

// ParseIntegrityFilter parses a wire token ("all", "compromised", "standard").
// "bribed" is accepted as an alias of "compromised".
func ParseIntegrityFilter(s string) (IntegrityFilter, error) {
	switch s {
	case "all":
		return IntegrityAll, nil
	case "compromised", "bribed":
		return IntegrityCompromisedOnly, nil
	case "standard":
		return IntegrityStandardOnly, nil
	}
	return IntegrityAll, &ViewParamError{Param: "integrity", Value: s}
}

// ParseSortKey parses a wire token ("name", "orders").
func ParseSortKey(s string) (SortKey, error) {
	switch s {
	case "name":
		return SortByName, nil
	case "orders":
		return SortByOrderCountDesc, nil
	}
	return SortByName, &ViewParamError{Param: "sort", Value: s}
}
