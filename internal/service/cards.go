package service

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	cardNumberLength = 16
	cardIssuerPrefix = "4"
	cvvLength        = 3
)

// Card is the payment card issued to a user at signup
type Card struct {
	ExpiryDate time.Time
	Number     string
	CVV        string
}

// CardIssuer generates Luhn-valid card numbers with a CVV and an expiry date
type CardIssuer struct {
	random        io.Reader
	now           func() time.Time
	validityYears int
}

// NewCardIssuer creates a CardIssuer whose cards expire validityYears after issuance
func NewCardIssuer(validityYears int) *CardIssuer {
	return &CardIssuer{
		random:        rand.Reader,
		now:           time.Now,
		validityYears: validityYears,
	}
}

// Issue returns a new card. Uniqueness is enforced by the store, not here.
func (c *CardIssuer) Issue() (*Card, error) {
	payload, err := c.randomDigits(cardNumberLength - len(cardIssuerPrefix) - 1)
	if err != nil {
		return nil, fmt.Errorf("failed to generate card number: %w", err)
	}

	digits := make([]int, 0, cardNumberLength)
	for _, r := range cardIssuerPrefix + payload {
		digits = append(digits, int(r-'0'))
	}
	check := (10 - luhnSum(digits, true)%10) % 10

	cvv, err := c.randomDigits(cvvLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate cvv: %w", err)
	}

	issued := c.now().UTC()
	expiry := time.Date(issued.Year()+c.validityYears, issued.Month(), 1, 0, 0, 0, 0, time.UTC)

	return &Card{
		Number:     cardIssuerPrefix + payload + strconv.Itoa(check),
		CVV:        cvv,
		ExpiryDate: expiry,
	}, nil
}

func (c *CardIssuer) randomDigits(n int) (string, error) {
	var sb strings.Builder
	sb.Grow(n)

	ten := big.NewInt(10)
	for range n {
		d, err := rand.Int(c.random, ten)
		if err != nil {
			return "", err
		}
		sb.WriteByte(byte('0' + d.Int64()))
	}

	return sb.String(), nil
}
