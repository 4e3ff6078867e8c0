package cache

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const keySeparator = ":"

// Key is a hierarchical cache key: an ordered tuple of typed segments
// joined into one comparable value. Identical inputs always build an
// identical key, and a scenario-scoped key is a descendant of its
// company-scoped key, which is what makes prefix invalidation safe.
//
// Keys are only built from the constructors below; free-form strings never
// enter a key, so segments cannot collide with the separator.
type Key struct {
	path string
	kind string
}

// String returns the canonical form, for logging only
func (k Key) String() string {
	return k.path
}

// Kind names the class of data the key addresses ("companies", "detail",
// "analysis", ...). It is a bounded set, safe as a metrics label.
func (k Key) Kind() string {
	return k.kind
}

// IsZero reports whether the key was never built
func (k Key) IsZero() bool {
	return k.path == ""
}

// HasPrefix reports whether k equals prefix or descends from it
func (k Key) HasPrefix(prefix Key) bool {
	if k.path == prefix.path {
		return true
	}
	return strings.HasPrefix(k.path, prefix.path+keySeparator)
}

func joinKey(kind string, segments ...string) Key {
	return Key{kind: kind, path: strings.Join(segments, keySeparator)}
}

// CompanyListKey covers the company directory
func CompanyListKey() Key {
	return joinKey("companies", "companies")
}

// CompanyKey is the root of everything cached for one company
func CompanyKey(companyID uuid.UUID) Key {
	return joinKey("company", "company", companyID.String())
}

// CompanyDetailKey covers the years-and-scenarios bundle of one company
func CompanyDetailKey(companyID uuid.UUID) Key {
	return joinKey("detail", "company", companyID.String(), "detail")
}

// CompanyYearKey scopes one recorded fiscal year of one company
func CompanyYearKey(companyID uuid.UUID, year int) Key {
	return joinKey("year", "company", companyID.String(), "year", strconv.Itoa(year))
}

// ScenarioKey is the root of everything derived for one (company, scenario)
// pair: analysis, cash flow, reclassified data, ratios, commentary. It is
// the prefix invalidated after every scenario-scoped mutation.
func ScenarioKey(companyID, scenarioID uuid.UUID) Key {
	return joinKey("scenario", "company", companyID.String(), "scenario", scenarioID.String())
}

// AnalysisKey covers the analysis snapshot of one (company, scenario) pair
func AnalysisKey(companyID, scenarioID uuid.UUID) Key {
	return joinKey("analysis", "company", companyID.String(), "scenario", scenarioID.String(), "analysis")
}

// CommentaryKey covers the commentary map of one (company, scenario) pair
func CommentaryKey(companyID, scenarioID uuid.UUID) Key {
	return joinKey("commentary", "company", companyID.String(), "scenario", scenarioID.String(), "commentary")
}
