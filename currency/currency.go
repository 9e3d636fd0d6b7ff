// Package currency holds the static currency table and price formatting.
// All rates are expressed relative to ZAR (South African Rand), the base
// currency of the catalog prices.
package currency

import "fmt"

type Currency struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Symbol string  `json:"symbol"`
	Rate   float64 `json:"rate"` // rate to ZAR
}

// Currencies is the full supported table. ZAR is the base (rate 1).
var Currencies = []Currency{
	{Code: "ZAR", Name: "South African Rand", Symbol: "R", Rate: 1},
	{Code: "USD", Name: "US Dollar", Symbol: "$", Rate: 0.055},
	{Code: "EUR", Name: "Euro", Symbol: "€", Rate: 0.051},
	{Code: "GBP", Name: "British Pound", Symbol: "£", Rate: 0.044},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥", Rate: 8.2},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$", Rate: 0.085},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$", Rate: 0.076},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF", Rate: 0.049},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥", Rate: 0.40},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹", Rate: 4.6},
	{Code: "BRL", Name: "Brazilian Real", Symbol: "R$", Rate: 0.31},
	{Code: "RUB", Name: "Russian Ruble", Symbol: "₽", Rate: 5.5},
	{Code: "KRW", Name: "South Korean Won", Symbol: "₩", Rate: 76},
	{Code: "SGD", Name: "Singapore Dollar", Symbol: "S$", Rate: 0.074},
	{Code: "HKD", Name: "Hong Kong Dollar", Symbol: "HK$", Rate: 0.43},
}

func lookup(code string) (Currency, bool) {
	for _, c := range Currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// ConvertFromZAR converts an amount in ZAR into the target currency.
// Unknown codes return the amount unchanged.
func ConvertFromZAR(amountZAR float64, code string) float64 {
	c, ok := lookup(code)
	if !ok {
		return amountZAR
	}
	return amountZAR * c.Rate
}

// ConvertToZAR converts an amount in the given currency back to ZAR.
// Unknown codes return the amount unchanged.
func ConvertToZAR(amount float64, code string) float64 {
	c, ok := lookup(code)
	if !ok {
		return amount
	}
	return amount / c.Rate
}

// FormatPrice renders a ZAR amount in the target currency: symbol followed
// by the converted value with two decimals. Unknown codes produce the bare
// amount with no symbol.
func FormatPrice(amountZAR float64, code string) string {
	c, ok := lookup(code)
	if !ok {
		return fmt.Sprintf("%v", amountZAR)
	}
	return fmt.Sprintf("%s%.2f", c.Symbol, amountZAR*c.Rate)
}

// Symbol returns the display symbol for a currency code, or the code itself
// when unknown.
func Symbol(code string) string {
	c, ok := lookup(code)
	if !ok {
		return code
	}
	return c.Symbol
}
