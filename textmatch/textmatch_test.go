package textmatch

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/louisbranch/acceptlang"
)

func TestTagsKeepsRankedOrderAndWeights(t *testing.T) {
	t.Parallel()

	prefs := acceptlang.Parse("da, en-GB;q=0.8, en;q=0.7")
	tags, weights := Tags(prefs)
	if len(tags) != 3 || len(weights) != 3 {
		t.Fatalf("Tags() = %v, %v, want 3 tags and 3 weights", tags, weights)
	}
	if tags[0] != language.Danish {
		t.Fatalf("tags[0] = %v, want %v", tags[0], language.Danish)
	}
	if tags[1] != language.BritishEnglish {
		t.Fatalf("tags[1] = %v, want %v", tags[1], language.BritishEnglish)
	}
	if weights[0] != 1.0 || weights[1] != 0.8 {
		t.Fatalf("weights = %v, want descending from 1.0", weights)
	}
}

func TestTagsMapsWildcardToMul(t *testing.T) {
	t.Parallel()

	prefs := acceptlang.Parse("*;q=0.5")
	tags, _ := Tags(prefs)
	if len(tags) != 1 || tags[0] != language.Make("mul") {
		t.Fatalf("Tags() = %v, want [mul]", tags)
	}
}

func TestMatchPicksSupportedTag(t *testing.T) {
	t.Parallel()

	supported := []language.Tag{language.AmericanEnglish, language.BrazilianPortuguese}
	prefs := acceptlang.Parse("pt-BR, en;q=0.5")
	if got := Match(prefs, supported); got != language.BrazilianPortuguese {
		t.Fatalf("Match() = %v, want %v", got, language.BrazilianPortuguese)
	}
}

func TestMatchFallsBackToFirstSupported(t *testing.T) {
	t.Parallel()

	supported := []language.Tag{language.AmericanEnglish, language.BrazilianPortuguese}
	prefs := acceptlang.Parse("ja")
	if got := Match(prefs, supported); got != language.AmericanEnglish {
		t.Fatalf("Match() = %v, want fallback %v", got, language.AmericanEnglish)
	}
	if got := Match(acceptlang.Parse(""), nil); got != language.Und {
		t.Fatalf("Match() with no supported tags = %v, want Und", got)
	}
}
