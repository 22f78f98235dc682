package domain

// Currency describes a supported ISO-4217 currency. The table exists for
// validating a space's currency code; formatting is left to the client.
type Currency struct {
	Code       string
	Symbol     string
	MinorUnits int
}

var supportedCurrencies = map[string]Currency{
	"CAD": {Code: "CAD", Symbol: "$", MinorUnits: 2},
	"USD": {Code: "USD", Symbol: "$", MinorUnits: 2},
	"EUR": {Code: "EUR", Symbol: "€", MinorUnits: 2},
	"GBP": {Code: "GBP", Symbol: "£", MinorUnits: 2},
	"JPY": {Code: "JPY", Symbol: "¥", MinorUnits: 0},
	"KRW": {Code: "KRW", Symbol: "₩", MinorUnits: 0},
	"CNY": {Code: "CNY", Symbol: "¥", MinorUnits: 2},
	"AUD": {Code: "AUD", Symbol: "$", MinorUnits: 2},
	"CHF": {Code: "CHF", Symbol: "CHF", MinorUnits: 2},
	"INR": {Code: "INR", Symbol: "₹", MinorUnits: 2},
}

// CurrencyByCode looks up a supported currency.
func CurrencyByCode(code string) (Currency, bool) {
	c, ok := supportedCurrencies[code]
	return c, ok
}

// IsSupportedCurrency reports whether code is in the supported set.
func IsSupportedCurrency(code string) bool {
	_, ok := supportedCurrencies[code]
	return ok
}
