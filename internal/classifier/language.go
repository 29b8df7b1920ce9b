package classifier

import (
	"github.com/samber/lo"
)

const (
	DefaultLanguage    = "en"
	minDistinctMarkers = 2
)

var countryLanguages = map[string]string{
	"US": "en", "GB": "en", "IN": "en", "AU": "en", "CA": "en", "IE": "en", "AE": "en",
	"DE": "de", "AT": "de", "CH": "de",
	"FR": "fr", "BE": "fr",
	"ES": "es",
	"IT": "it",
	"NL": "nl",
	"SE": "sv",
	"DK": "da",
	"NO": "no",
	"FI": "fi",
	"CZ": "cs",
}

type languageMarkers struct {
	Language string
	Markers  []string
}

// LanguageMarkers order breaks ties between languages with the same number of distinct markers.
var LanguageMarkers = []languageMarkers{
	{Language: "de", Markers: []string{"und", "wir", "sie", "mit", "für", "der", "das", "erfahrung",
		"kenntnisse", "aufgaben", "stelle", "bewerbung"}},
	{Language: "fr", Markers: []string{"nous", "vous", "avec", "pour", "les", "une", "expérience", "poste",
		"équipe", "compétences", "candidature"}},
	{Language: "es", Markers: []string{"nosotros", "experiencia", "para", "con", "los", "las", "una",
		"empresa", "buscamos", "equipo", "requisitos", "puesto"}},
}

func CountryLanguage(countryCode string) string {
	if lang, ok := countryLanguages[countryCode]; ok {
		return lang
	}
	return DefaultLanguage
}

// Language starts from the country default and switches only when a marker language has
// at least two distinct marker words in the text.
func Language(title, description, countryCode string) string {
	text := joinLower(title, description)

	best, bestCount := CountryLanguage(countryCode), 0
	for _, candidate := range LanguageMarkers {
		count := lo.CountBy(candidate.Markers, func(marker string) bool {
			return containsWord(text, marker)
		})
		if count >= minDistinctMarkers && count > bestCount {
			best, bestCount = candidate.Language, count
		}
	}
	return best
}
