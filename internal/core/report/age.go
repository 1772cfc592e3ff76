package report

import (
	"strings"
)

// AgeBucket is one of the three fixed required-age ranges.
type AgeBucket string

const (
	AgeChild      AgeBucket = "child"       // 0-7
	AgeTeen       AgeBucket = "teen"        // 8-15
	AgeYoungAdult AgeBucket = "young_adult" // 16-21
)

// AgeRange is an inclusive required-age interval.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether age falls inside the inclusive range.
func (r AgeRange) Contains(age int) bool {
	return age >= r.Min && age <= r.Max
}

var ageBucketRanges = map[AgeBucket]AgeRange{
	AgeChild:      {Min: 0, Max: 7},
	AgeTeen:       {Min: 8, Max: 15},
	AgeYoungAdult: {Min: 16, Max: 21},
}

// ageBucketOrder fixes the order compiled ranges are emitted in.
var ageBucketOrder = []AgeBucket{AgeChild, AgeTeen, AgeYoungAdult}

// ageBucketAliases accepts the enum tokens, the bare ranges and the labels
// used by the original dashboard widgets.
var ageBucketAliases = map[string]AgeBucket{
	"child":                AgeChild,
	"children":             AgeChild,
	"0-7":                  AgeChild,
	"0-7 (children)":       AgeChild,
	"teen":                 AgeTeen,
	"teens":                AgeTeen,
	"8-15":                 AgeTeen,
	"8-15 (teens)":         AgeTeen,
	"young_adult":          AgeYoungAdult,
	"young_adults":         AgeYoungAdult,
	"16-21":                AgeYoungAdult,
	"16-21 (young adults)": AgeYoungAdult,
}

// ParseAgeBucket resolves a bucket token. Unknown tokens are ErrInvalidArgument.
func ParseAgeBucket(token string) (AgeBucket, error) {
	b, ok := ageBucketAliases[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		return "", invalidArgumentf("unknown age bucket %q", token)
	}
	return b, nil
}

// Range returns the inclusive range of a bucket.
func (b AgeBucket) Range() AgeRange {
	return ageBucketRanges[b]
}

// AgeBuckets lists the known buckets in ascending order.
func AgeBuckets() []AgeBucket {
	out := make([]AgeBucket, len(ageBucketOrder))
	copy(out, ageBucketOrder)
	return out
}
