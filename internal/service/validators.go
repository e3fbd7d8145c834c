package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// amountScale is the number of fraction digits balances are stored with
const amountScale = 2

// ValidateLuhn validates a card number using the Luhn algorithm
func ValidateLuhn(cardNumber string) error {
	var digits []int
	for _, r := range cardNumber {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}

	if len(digits) < 13 || len(digits) > 19 {
		return fmt.Errorf("invalid card number length: must be 13-19 digits")
	}

	if luhnSum(digits, false)%10 != 0 {
		return fmt.Errorf("invalid card number: failed Luhn check")
	}

	return nil
}

// luhnSum adds up digits from the right, doubling every second one.
// With doubleFirst set the rightmost digit is doubled, which is what a
// check digit computation over the payload needs.
func luhnSum(digits []int, doubleFirst bool) int {
	sum := 0
	isSecond := doubleFirst

	for i := len(digits) - 1; i >= 0; i-- {
		digit := digits[i]

		if isSecond {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		isSecond = !isSecond
	}

	return sum
}

// ValidateAmount checks that a transfer amount is positive and fits the stored scale
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("invalid amount: must be greater than 0")
	}

	return ValidateScale(amount)
}

// ValidateScale rejects amounts with more fraction digits than balances store
func ValidateScale(amount decimal.Decimal) error {
	if !amount.Equal(amount.Round(amountScale)) {
		return fmt.Errorf("invalid amount: at most %d decimal places", amountScale)
	}
	return nil
}

// ValidateUsername rejects blank usernames
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username cannot be empty")
	}
	return nil
}
