package report

import (
	"strings"
)

// FilterSpec is the per-interaction selection coming from the UI layer.
//
// Every set follows the same convention: empty means "no restriction",
// non-empty restricts. IncludedCategories and Genres are OR-matched,
// ExcludedCategories is AND-NOT-matched, AgeBuckets is OR-matched over the
// bucket ranges. A single required category is simply a one-element
// IncludedCategories.
type FilterSpec struct {
	IncludedCategories []string `json:"included_categories,omitempty"`
	ExcludedCategories []string `json:"excluded_categories,omitempty"`
	Genres             []string `json:"genres,omitempty"`
	AgeBuckets         []string `json:"age_buckets,omitempty"`
}

// Predicate is a compiled FilterSpec.
//
// Tag sets are lower-cased and deduplicated; matching is exact tag set
// membership after splitting the comma-joined column, case-insensitive.
// "RPG" never matches "RPGLike". SQL stores bind these slices as query
// parameters instead of rendering them into the statement.
type Predicate struct {
	Include   []string
	Exclude   []string
	Genres    []string
	AgeRanges []AgeRange
}

// Compile validates and normalizes a FilterSpec.
func Compile(spec FilterSpec) (Predicate, error) {
	p := Predicate{
		Include: normalizeTags(spec.IncludedCategories),
		Exclude: normalizeTags(spec.ExcludedCategories),
		Genres:  normalizeTags(spec.Genres),
	}

	selected := make(map[AgeBucket]bool, len(spec.AgeBuckets))
	for _, token := range spec.AgeBuckets {
		if strings.TrimSpace(token) == "" {
			continue
		}
		b, err := ParseAgeBucket(token)
		if err != nil {
			return Predicate{}, err
		}
		selected[b] = true
	}
	for _, b := range ageBucketOrder {
		if selected[b] {
			p.AgeRanges = append(p.AgeRanges, b.Range())
		}
	}

	return p, nil
}

// Match evaluates the predicate against a game in memory.
func (p Predicate) Match(g GameRecord) bool {
	return p.matchInclude(g) && p.matchExclude(g) && p.matchGenres(g) && p.matchAge(g)
}

// IsEmpty reports whether the predicate accepts every record.
func (p Predicate) IsEmpty() bool {
	return len(p.Include) == 0 && len(p.Exclude) == 0 && len(p.Genres) == 0 && len(p.AgeRanges) == 0
}

// AgeBounds splits AgeRanges into parallel lower and upper bound slices, the
// shape SQL stores bind as two arrays.
func (p Predicate) AgeBounds() (mins, maxs []int64) {
	mins = make([]int64, 0, len(p.AgeRanges))
	maxs = make([]int64, 0, len(p.AgeRanges))
	for _, r := range p.AgeRanges {
		mins = append(mins, int64(r.Min))
		maxs = append(maxs, int64(r.Max))
	}
	return mins, maxs
}

func (p Predicate) matchInclude(g GameRecord) bool {
	if len(p.Include) == 0 {
		return true
	}
	return sharesTag(g.Categories, p.Include)
}

func (p Predicate) matchExclude(g GameRecord) bool {
	if len(p.Exclude) == 0 {
		return true
	}
	return !sharesTag(g.Categories, p.Exclude)
}

func (p Predicate) matchGenres(g GameRecord) bool {
	if len(p.Genres) == 0 {
		return true
	}
	return sharesTag(g.Genres, p.Genres)
}

func (p Predicate) matchAge(g GameRecord) bool {
	if len(p.AgeRanges) == 0 {
		return true
	}
	for _, r := range p.AgeRanges {
		if r.Contains(g.RequiredAge) {
			return true
		}
	}
	return false
}

// sharesTag reports whether any record tag equals any wanted tag.
// wanted must already be normalized.
func sharesTag(tags []string, wanted []string) bool {
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		for _, w := range wanted {
			if tag == w {
				return true
			}
		}
	}
	return false
}

func normalizeTags(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, tag := range in {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
