// Package acceptlang parses Accept-Language header values and negotiates
// the best language to serve from a list of supported tags.
//
// Parse builds an immutable preference table from a header value; the
// table can then be matched against any number of supported-tag lists,
// concurrently, without re-parsing:
//
//	prefs := acceptlang.Parse("da, en-GB;q=0.8, en;q=0.7")
//	tag, ok := prefs.Match("en", "da")
//
// Matching follows RFC 4647 section 3.3.1 Basic Filtering: a language
// range matches a tag when the tag equals the range or extends it with a
// hyphen-delimited suffix, compared case-insensitively. A quality of
// zero marks a range as not acceptable and excludes every tag it covers.
// The wildcard range matches only tags not claimed by any other declared
// range. Ties in quality are broken by declaration order.
//
// Parsing is deliberately lenient about content: malformed entries are
// dropped rather than reported, so real-world non-conforming headers
// still yield the best table that can be salvaged. "No match" is a
// normal outcome, not an error.
package acceptlang

// Quality is a preference weight on a fixed-point scale from 0 to 1000,
// representing the q-value range 0.000 to 1.000.
type Quality uint16

// QualityMax is the fixed-point form of q=1, the weight assigned to
// entries that carry no explicit quality value.
const QualityMax Quality = 1000

// Float32 returns the quality on the 0.0 to 1.0 scale.
func (q Quality) Float32() float32 {
	return float32(q) / 1000
}

// wildcard is the language range that matches tags not claimed by any
// other declared range.
const wildcard = "*"

// Entry is one acceptable language preference from a parsed header.
type Entry struct {
	Range   string // lowercased language range, or "*"
	Quality Quality
}

// entry additionally records the zero-based position of the range's
// first declaration, used to break quality ties.
type entry struct {
	pattern string
	quality Quality
	pos     int
}

// Preferences is an immutable preference table built by Parse. The zero
// value is an empty table that matches nothing. A Preferences may be
// shared and matched concurrently.
type Preferences struct {
	preferred []entry  // quality > 0, sorted by descending quality then declaration order
	excluded  []string // non-wildcard ranges declared with quality 0, in declaration order
}

// Entries returns the acceptable preferences in ranked order: descending
// quality, ties broken by first declaration.
func (p Preferences) Entries() []Entry {
	out := make([]Entry, len(p.preferred))
	for i, e := range p.preferred {
		out[i] = Entry{Range: e.pattern, Quality: e.quality}
	}
	return out
}

// Excluded returns the ranges declared not acceptable (quality 0), in
// declaration order. The wildcard never appears here: a zero-quality
// wildcard is expressed by its absence from Entries, so that explicitly
// declared ranges keep their own acceptability.
func (p Preferences) Excluded() []string {
	out := make([]string, len(p.excluded))
	copy(out, p.excluded)
	return out
}

// Len returns the number of acceptable preferences.
func (p Preferences) Len() int {
	return len(p.preferred)
}
