// Package textmatch bridges acceptlang preference tables to
// golang.org/x/text/language matching, for hosts that standardize on
// x/text tags while leaving the Accept-Language grammar to acceptlang.
package textmatch

import (
	"golang.org/x/text/language"

	"github.com/louisbranch/acceptlang"
)

// multilingual is how x/text represents the wildcard range, mirroring
// language.ParseAcceptLanguage.
var multilingual = language.Make("mul")

// Tags converts the ranked preferences into x/text language tags and
// their quality weights, in matching order. Ranges that do not parse as
// BCP 47 tags are skipped; the wildcard maps to the "mul" tag.
func Tags(prefs acceptlang.Preferences) ([]language.Tag, []float32) {
	entries := prefs.Entries()
	tags := make([]language.Tag, 0, len(entries))
	weights := make([]float32, 0, len(entries))
	for _, e := range entries {
		tag := multilingual
		if e.Range != "*" {
			parsed, err := language.Parse(e.Range)
			if err != nil {
				continue
			}
			tag = parsed
		}
		tags = append(tags, tag)
		weights = append(weights, e.Quality.Float32())
	}
	return tags, weights
}

// Match negotiates the best supported tag for the preferences using
// language.NewMatcher. When nothing matches, the matcher falls back to
// the first supported tag, per x/text semantics. An empty supported
// list yields language.Und.
func Match(prefs acceptlang.Preferences, supported []language.Tag) language.Tag {
	if len(supported) == 0 {
		return language.Und
	}
	matcher := language.NewMatcher(supported)
	tags, _ := Tags(prefs)
	_, index, _ := matcher.Match(tags...)
	return supported[index]
}
