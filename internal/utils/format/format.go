// Package format renders amounts for the English and Urdu ledger views.
package format

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Lang selects labels and number conventions.
type Lang string

const (
	English Lang = "en"
	Urdu    Lang = "ur"
)

const rupeeSuffix = " روپے"

// ParseLang accepts "en" or "ur"; empty means English.
func ParseLang(s string) (Lang, error) {
	switch Lang(strings.ToLower(strings.TrimSpace(s))) {
	case "", English:
		return English, nil
	case Urdu:
		return Urdu, nil
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

func (l Lang) tag() language.Tag {
	if l == Urdu {
		return language.MustParse("ur-PK")
	}
	return language.AmericanEnglish
}

// FormatAmount groups thousands and keeps at most two fraction digits.
// Urdu output puts the minus sign after the digits.
func FormatAmount(d decimal.Decimal, lang Lang) string {
	p := message.NewPrinter(lang.tag())
	if lang == Urdu {
		s := p.Sprint(number.Decimal(d.Abs().Round(2).InexactFloat64(), number.MaxFractionDigits(2)))
		if d.Round(2).IsNegative() {
			return s + "-"
		}
		return s
	}
	return p.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.MaxFractionDigits(2)))
}

// FormatCurrency renders d in the given ISO currency. English uses the
// currency's own symbol and fraction digits; Urdu appends "روپے".
func FormatCurrency(d decimal.Decimal, code string, lang Lang) string {
	if lang == Urdu {
		return FormatAmount(d, Urdu) + rupeeSuffix
	}
	currency := money.GetCurrency(code)
	if currency == nil {
		return FormatAmount(d, lang) + " " + code
	}
	minor := d.Shift(int32(currency.Fraction)).Round(0).IntPart()
	return money.New(minor, currency.Code).Display()
}
