package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	DefaultCountry = "US"
	RemoteLocation = "Remote"
)

type Location struct {
	CountryCode string
	Region      string
	City        string
	Normalized  string
}

type countryPattern struct {
	Code string
	// Names match case-insensitively after accent folding.
	Names []string
	// Abbreviations match case-sensitively as whole tokens.
	Abbreviations []string
}

var countryPatterns = []countryPattern{
	{"US", []string{"usa", "united states", "new york", "san francisco", "los angeles", "seattle", "austin", "chicago", "boston"},
		[]string{"US", "USA", "NY", "CA", "TX", "FL", "IL", "WA", "MA"}},
	{"IN", []string{"india", "mumbai", "bangalore", "bengaluru", "delhi", "hyderabad", "chennai", "pune", "gurgaon", "noida"},
		[]string{"IN"}},
	{"GB", []string{"united kingdom", "england", "scotland", "london", "manchester", "birmingham", "edinburgh"},
		[]string{"UK", "GB"}},
	{"DE", []string{"germany", "deutschland", "berlin", "munich", "munchen", "hamburg", "cologne", "koln", "frankfurt"},
		[]string{"DE"}},
	{"FR", []string{"france", "paris", "lyon", "marseille", "toulouse", "nice"}, []string{"FR"}},
	{"ES", []string{"spain", "espana", "madrid", "barcelona", "valencia", "seville"}, []string{"ES"}},
	{"IT", []string{"italy", "italia", "milan", "milano", "rome", "roma", "naples", "turin"}, []string{"IT"}},
	{"NL", []string{"netherlands", "amsterdam", "rotterdam", "the hague", "utrecht"}, []string{"NL"}},
	{"AU", []string{"australia", "sydney", "melbourne", "brisbane", "perth"}, []string{"AU"}},
	{"CA", []string{"canada", "toronto", "vancouver", "montreal", "calgary"}, []string{"CA"}},
	{"IE", []string{"ireland", "dublin", "cork"}, []string{"IE"}},
	{"CH", []string{"switzerland", "zurich", "geneva", "basel"}, []string{"CH"}},
	{"AT", []string{"austria", "vienna", "wien"}, []string{"AT"}},
	{"SE", []string{"sweden", "stockholm", "gothenburg"}, []string{"SE"}},
	{"DK", []string{"denmark", "copenhagen"}, []string{"DK"}},
	{"NO", []string{"norway", "oslo"}, []string{"NO"}},
	{"FI", []string{"finland", "helsinki"}, []string{"FI"}},
	{"BE", []string{"belgium", "brussels", "antwerp"}, []string{"BE"}},
	{"CZ", []string{"czech republic", "czechia", "prague"}, []string{"CZ"}},
	{"AE", []string{"united arab emirates", "dubai", "abu dhabi"}, []string{"UAE", "AE"}},
}

// configCountries maps the free-form country names accepted in scrape configs to ISO codes.
var configCountries = map[string]string{
	"usa": "US", "us": "US", "united states": "US",
	"india": "IN", "in": "IN",
	"uk": "GB", "gb": "GB", "united kingdom": "GB",
	"germany": "DE", "de": "DE",
	"france": "FR", "fr": "FR",
	"spain": "ES", "es": "ES",
	"italy": "IT", "it": "IT",
	"netherlands": "NL", "nl": "NL",
	"australia": "AU", "au": "AU",
	"canada": "CA", "ca": "CA",
}

// CountryCodeFor resolves a scrape-config country name, returning "" when it is unknown.
func CountryCodeFor(name string) string {
	return configCountries[strings.ToLower(strings.TrimSpace(name))]
}

// ParseLocation splits a free-text location into city and region and detects its country.
// Any mention of "remote" short-circuits to the Remote sentinel location.
func ParseLocation(raw, countryHint string) Location {
	raw = strings.TrimSpace(raw)
	country := countryHint
	if country == "" {
		country = DefaultCountry
	}

	if strings.Contains(strings.ToLower(raw), "remote") {
		return Location{CountryCode: country, Region: RemoteLocation, City: RemoteLocation, Normalized: RemoteLocation}
	}

	if detected := detectCountry(raw); detected != "" {
		country = detected
	}

	parts := strings.Split(raw, ",")
	city := cleanPlace(parts[0])
	region := ""
	if len(parts) >= 2 {
		region = cleanPlace(parts[1])
	}

	normalized := city
	if region != "" && region != city {
		normalized = city + ", " + region
	}

	return Location{CountryCode: country, Region: region, City: city, Normalized: normalized}
}

func detectCountry(raw string) string {
	folded := foldAccents(raw)
	for _, pattern := range countryPatterns {
		for _, name := range pattern.Names {
			if containsToken(folded, name) {
				return pattern.Code
			}
		}
		for _, abbreviation := range pattern.Abbreviations {
			if containsToken(raw, abbreviation) {
				return pattern.Code
			}
		}
	}
	return ""
}

func cleanPlace(place string) string {
	place = strings.ReplaceAll(place, " Area", "")
	place = strings.ReplaceAll(place, " Metropolitan", "")
	return strings.TrimSpace(place)
}

func foldAccents(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, str)
	if err != nil {
		result = str
	}
	return strings.ToLower(result)
}

func containsToken(text, token string) bool {
	for from := 0; from < len(text); {
		idx := strings.Index(text[from:], token)
		if idx < 0 {
			return false
		}
		start, end := from+idx, from+idx+len(token)
		prev, _ := utf8.DecodeLastRuneInString(text[:start])
		next, _ := utf8.DecodeRuneInString(text[end:])
		if (start == 0 || !isWordRune(prev)) && (end == len(text) || !isWordRune(next)) {
			return true
		}
		from = start + 1
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
