package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// displayLocale drives digit grouping of amounts shown to users
var displayLocale = language.AmericanEnglish

const (
	amountFractionDigits = 3
	cardGroupSize        = 4
)

// FormatAmount renders an amount with locale grouping, e.g. 1234567.5 as "1,234,567.5".
// The fraction is appended from the exact decimal rather than a float.
func FormatAmount(amount decimal.Decimal) string {
	rounded := amount.Round(amountFractionDigits)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	whole := rounded.Truncate(0)
	p := message.NewPrinter(displayLocale)
	out := sign + p.Sprint(number.Decimal(whole.IntPart()))
	if frac := rounded.Sub(whole); !frac.IsZero() {
		out += strings.TrimPrefix(frac.String(), "0")
	}
	return out
}

// FormatCardNumber splits a card number into space separated groups of four.
func FormatCardNumber(cardNumber string) string {
	var sb strings.Builder
	for i, r := range cardNumber {
		if i > 0 && i%cardGroupSize == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// FormatTransactionDate renders a ledger date as YYYY/M/D in UTC.
func FormatTransactionDate(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%d/%d/%d", t.Year(), int(t.Month()), t.Day())
}

// FormatExpiry renders a card expiry as M/YY.
func FormatExpiry(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%d/%02d", int(t.Month()), t.Year()%100)
}

// FormatBirthday renders a birthday as M/D/YYYY.
func FormatBirthday(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}
