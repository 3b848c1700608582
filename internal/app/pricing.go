package app

import (
	"fmt"

	"github.com/govalues/decimal"

	"fewo_booking/internal/domain"
)

// Money travels as fixed-point decimal strings end to end; floats would
// drift on totals.

func quote(pricePerNight, cleaningFee string, nights int) (string, error) {
	price, err := decimal.Parse(pricePerNight)
	if err != nil {
		return "", fmt.Errorf("price per night %q: %w", pricePerNight, err)
	}
	if cleaningFee == "" {
		cleaningFee = "0"
	}
	fee, err := decimal.Parse(cleaningFee)
	if err != nil {
		return "", fmt.Errorf("cleaning fee %q: %w", cleaningFee, err)
	}
	n, err := decimal.New(int64(nights), 0)
	if err != nil {
		return "", err
	}
	sub, err := price.Mul(n)
	if err != nil {
		return "", err
	}
	total, err := sub.Add(fee)
	if err != nil {
		return "", err
	}
	return total.Round(2).Pad(2).String(), nil
}

// normalizeAmount renders an amount with two decimal places; aggregate SQL
// results come back as "0" or "450.5".
func normalizeAmount(s string) string {
	d, err := decimal.Parse(s)
	if err != nil {
		return s
	}
	return d.Round(2).Pad(2).String()
}

// validAmount accepts a parseable, non-negative decimal string.
func validAmount(s string) bool {
	d, err := decimal.Parse(s)
	return err == nil && !d.IsNeg()
}

func validOptionalAmount(p *string) error {
	if p != nil && !validAmount(*p) {
		return fmt.Errorf("%w: amount %q", domain.ErrInvalid, *p)
	}
	return nil
}
