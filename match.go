package acceptlang

import "strings"

// Match returns the best available tag for these preferences using
// RFC 4647 Basic Filtering. Tags covered by an excluded range are
// removed first; the remaining tags are then searched in ranked
// preference order. The wildcard matches the first tag not claimed by
// any other declared range. The returned tag is the caller's value
// verbatim, original case preserved. ok is false when nothing
// acceptable is available.
func (p Preferences) Match(available ...string) (tag string, ok bool) {
	candidates := p.filter(available, prefixMatch)
	for _, e := range p.preferred {
		if e.pattern == wildcard {
			for _, c := range candidates {
				if !p.claimed(c, prefixMatch) {
					return c, true
				}
			}
			continue
		}
		for _, c := range candidates {
			if prefixMatch(e.pattern, c) {
				return c, true
			}
		}
	}
	return "", false
}

// MatchBase is the legacy truncation strategy: a range matches a tag
// when their primary subtags are equal, so an "en-US" preference matches
// an available "en" and vice versa. It is a materially different and
// coarser policy than Match and is kept as a separate entry point for
// callers migrating from truncation-based negotiators. Exclusions,
// ranking, and wildcard handling follow the same structure as Match,
// with the truncated comparison throughout.
func (p Preferences) MatchBase(available ...string) (tag string, ok bool) {
	candidates := p.filter(available, baseMatch)
	for _, e := range p.preferred {
		if e.pattern == wildcard {
			for _, c := range candidates {
				if !p.claimed(c, baseMatch) {
					return c, true
				}
			}
			continue
		}
		for _, c := range candidates {
			if baseMatch(e.pattern, c) {
				return c, true
			}
		}
	}
	return "", false
}

// filter drops the available tags covered by an excluded range.
func (p Preferences) filter(available []string, match func(r, tag string) bool) []string {
	if len(p.excluded) == 0 {
		return available
	}
	out := make([]string, 0, len(available))
	for _, tag := range available {
		covered := false
		for _, r := range p.excluded {
			if match(r, tag) {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, tag)
		}
	}
	return out
}

// claimed reports whether any non-wildcard preferred range matches tag,
// regardless of that range's quality or rank. Tags claimed by a
// declared range are never served through the wildcard.
func (p Preferences) claimed(tag string, match func(r, tag string) bool) bool {
	for _, e := range p.preferred {
		if e.pattern != wildcard && match(e.pattern, tag) {
			return true
		}
	}
	return false
}

// prefixMatch applies the RFC 4647 section 3.3.1 rule: range r matches
// tag when the tag case-insensitively equals r, or starts with r
// followed immediately by a hyphen. r is already lowercase; the tag
// keeps whatever case the caller supplied.
func prefixMatch(r, tag string) bool {
	if len(tag) < len(r) {
		return false
	}
	if len(tag) > len(r) && tag[len(r)] != '-' {
		return false
	}
	return strings.EqualFold(tag[:len(r)], r)
}

// baseMatch compares only the primary subtags, case-insensitively.
func baseMatch(r, tag string) bool {
	return strings.EqualFold(primary(r), primary(tag))
}

// primary returns the subtag before the first hyphen.
func primary(tag string) string {
	if i := strings.IndexByte(tag, '-'); i >= 0 {
		return tag[:i]
	}
	return tag
}
