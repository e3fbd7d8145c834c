package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{amount: "0", expected: "0"},
		{amount: "30", expected: "30"},
		{amount: "1234.5", expected: "1,234.5"},
		{amount: "1000000", expected: "1,000,000"},
		{amount: "-2500.25", expected: "-2,500.25"},
		{amount: "0.1234", expected: "0.123"},
		{amount: "999.9996", expected: "1,000"},
		{amount: "-0.0004", expected: "0"},
		{amount: "123456789012345.67", expected: "123,456,789,012,345.67"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatAmount(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestFormatCardNumber(t *testing.T) {
	assert.Equal(t, "4000 0012 3456 7899", FormatCardNumber("4000001234567899"))
	assert.Equal(t, "1234 5", FormatCardNumber("12345"))
	assert.Equal(t, "", FormatCardNumber(""))
}

func TestFormatTransactionDate(t *testing.T) {
	// Thursday the 7th: the day of month is rendered, not the weekday.
	date := time.Date(2024, time.March, 7, 23, 15, 0, 0, time.UTC)

	assert.Equal(t, "2024/3/7", FormatTransactionDate(date))
}

func TestFormatTransactionDate_ConvertsToUTC(t *testing.T) {
	zone := time.FixedZone("UTC+3", 3*60*60)
	date := time.Date(2024, time.January, 1, 1, 0, 0, 0, zone)

	assert.Equal(t, "2023/12/31", FormatTransactionDate(date))
}

func TestFormatExpiry(t *testing.T) {
	assert.Equal(t, "1/29", FormatExpiry(time.Date(2029, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "12/05", FormatExpiry(time.Date(2105, time.December, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFormatBirthday(t *testing.T) {
	assert.Equal(t, "7/4/1990", FormatBirthday(time.Date(1990, time.July, 4, 0, 0, 0, 0, time.UTC)))
}
