package bundle

import (
	"strings"

	"golang.org/x/text/language"
)

// --------------------------------------------------------------------------
// Locale Resolution
// --------------------------------------------------------------------------

// Candidates returns the bundle names that are consulted for the given locale,
// from the most specific to the base name itself:
//
//	Candidates("messages", language.MustParse("de-AT")) // [messages_de_AT messages_de messages]
//	Candidates("messages", language.Und)                 // [messages]
//
// Only explicitly given subtags are used; inferred regions are ignored.
func Candidates(name string, tag language.Tag) []string {
	if tag == language.Und {
		return []string{name}
	}

	var candidates []string

	base, conf := tag.Base()
	if conf != language.Exact || base.String() == "und" {
		return []string{name}
	}
	if region, conf := tag.Region(); conf == language.Exact {
		candidates = append(candidates, name+"_"+base.String()+"_"+region.String())
	}
	candidates = append(candidates, name+"_"+base.String(), name)

	return candidates
}

// ParseLocale parses a locale such as "en", "en-US" or "en_US".
// An empty string yields language.Und.
func ParseLocale(locale string) (language.Tag, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und, WrapError(RetCInvalidArgument, "invalid locale "+locale, err)
	}
	return tag, nil
}
