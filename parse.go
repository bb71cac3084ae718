package acceptlang

import (
	"sort"
	"strings"
	"unicode"
)

// Parser controls header parsing. The zero value applies the strict
// RFC 7231 quality grammar and is what Parse uses.
type Parser struct {
	// LenientQuality additionally accepts quality values written
	// without a leading digit, such as ".8". Off by default.
	LenientQuality bool
}

// Parse builds a preference table from an Accept-Language header value
// using the default strict Parser. An empty or absent header yields an
// empty table.
func Parse(header string) Preferences {
	return Parser{}.Parse(header)
}

// Parse builds a preference table from an Accept-Language header value.
// Whitespace is ignored, entries are split on commas, and each entry is
// split on the case-insensitive ";q=" marker into a language range and
// an optional quality value. Entries with an invalid range or quality
// are dropped silently. When a range is declared more than once the last
// quality wins, but the entry keeps the position of its first
// declaration for tie-breaking.
func (p Parser) Parse(header string) Preferences {
	header = stripSpace(header)

	var order []string
	type slot struct {
		quality Quality
		pos     int
	}
	slots := make(map[string]slot)

	for header != "" {
		var item string
		item, header, _ = strings.Cut(header, ",")
		if item == "" {
			continue
		}
		rangePart, qualityPart, hasQuality := cutQuality(item)
		if !isValidRange(rangePart) {
			continue
		}
		quality := QualityMax
		if hasQuality {
			q, ok := parseQuality(qualityPart, p.LenientQuality)
			if !ok {
				continue
			}
			quality = q
		}
		lower := strings.ToLower(rangePart)
		if s, ok := slots[lower]; ok {
			s.quality = quality
			slots[lower] = s
			continue
		}
		slots[lower] = slot{quality: quality, pos: len(order)}
		order = append(order, lower)
	}

	var prefs Preferences
	for _, lower := range order {
		s := slots[lower]
		if s.quality == 0 {
			if lower != wildcard {
				prefs.excluded = append(prefs.excluded, lower)
			}
			continue
		}
		prefs.preferred = append(prefs.preferred, entry{
			pattern: lower,
			quality: s.quality,
			pos:     s.pos,
		})
	}
	sort.Slice(prefs.preferred, func(i, j int) bool {
		a, b := prefs.preferred[i], prefs.preferred[j]
		if a.quality != b.quality {
			return a.quality > b.quality
		}
		return a.pos < b.pos
	})
	return prefs
}

// cutQuality splits an entry on the first case-insensitive ";q=" marker.
func cutQuality(s string) (rangePart, qualityPart string, ok bool) {
	for i := 0; i+3 <= len(s); i++ {
		if s[i] == ';' && (s[i+1] == 'q' || s[i+1] == 'Q') && s[i+2] == '=' {
			return s[:i], s[i+3:], true
		}
	}
	return s, "", false
}

// stripSpace removes all whitespace from the header value.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
