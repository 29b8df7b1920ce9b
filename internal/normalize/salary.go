package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultCurrency = "USD"

var countryCurrencies = map[string]string{
	"US": "USD", "IN": "INR", "GB": "GBP", "DE": "EUR", "FR": "EUR",
	"ES": "EUR", "IT": "EUR", "NL": "EUR", "AU": "AUD", "AE": "AED",
	"CA": "CAD", "CH": "CHF", "SE": "SEK", "NO": "NOK", "DK": "DKK",
	"IE": "EUR", "AT": "EUR", "FI": "EUR", "BE": "EUR", "CZ": "CZK",
}

var currencySymbols = map[string]string{
	"USD": "$", "INR": "₹", "GBP": "£", "EUR": "€", "AUD": "A$", "CAD": "C$",
}

var numberPrinter = message.NewPrinter(language.English)

// Amount is a salary bound as delivered by the provider. It may be absent or unparsable.
type Amount struct {
	Value   float64
	Present bool
	// Invalid marks a value that was present but could not be read as a number.
	Invalid bool
}

func AmountOf(value float64) Amount {
	return Amount{Value: value, Present: true}
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	*a = Amount{}
	str := strings.TrimSpace(string(b))
	if str == "null" || str == "" {
		return nil
	}

	if unquoted, err := strconv.Unquote(str); err == nil {
		str = strings.TrimSpace(unquoted)
		if str == "" {
			return nil
		}
	}

	var value float64
	if err := json.Unmarshal([]byte(str), &value); err != nil {
		parsed, parseErr := strconv.ParseFloat(strings.ReplaceAll(str, ",", ""), 64)
		if parseErr != nil {
			a.Present, a.Invalid = true, true
			return nil
		}
		value = parsed
	}

	a.Value, a.Present = value, true
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Present || a.Invalid || math.IsNaN(a.Value) || math.IsInf(a.Value, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(a.Value)
}

type Salary struct {
	Display  *string
	Min      *int64
	Max      *int64
	Currency string
}

func CurrencyFor(countryCode string) string {
	if currency, ok := countryCurrencies[countryCode]; ok {
		return currency
	}
	return DefaultCurrency
}

// CleanSalary never fails: unreadable bounds collapse to an empty salary in the country currency.
func CleanSalary(min, max Amount, countryCode string) Salary {
	currency := CurrencyFor(countryCode)

	cleanMin, okMin := cleanBound(min)
	cleanMax, okMax := cleanBound(max)
	if !okMin || !okMax {
		return Salary{Currency: currency}
	}

	symbol := currencySymbol(currency)
	var display *string
	switch {
	case cleanMin != nil && cleanMax != nil:
		display = ptr(numberPrinter.Sprintf("%s%d - %s%d", symbol, *cleanMin, symbol, *cleanMax))
	case cleanMin != nil:
		display = ptr(numberPrinter.Sprintf("%s%d+", symbol, *cleanMin))
	case cleanMax != nil:
		display = ptr(numberPrinter.Sprintf("Up to %s%d", symbol, *cleanMax))
	}

	return Salary{Display: display, Min: cleanMin, Max: cleanMax, Currency: currency}
}

// cleanBound reports ok=false on a conversion failure, and a nil bound for absent or non-positive values.
func cleanBound(amount Amount) (*int64, bool) {
	if !amount.Present {
		return nil, true
	}
	if amount.Invalid {
		return nil, false
	}
	if math.IsNaN(amount.Value) || amount.Value <= 0 {
		return nil, true
	}
	if math.IsInf(amount.Value, 0) || amount.Value >= math.MaxInt64 {
		return nil, false
	}
	value := int64(amount.Value)
	if value <= 0 {
		return nil, true
	}
	return &value, true
}

func currencySymbol(currency string) string {
	if symbol, ok := currencySymbols[currency]; ok {
		return symbol
	}
	return currency + " "
}

func ptr[T any](v T) *T {
	return &v
}
