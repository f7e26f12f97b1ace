package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CombinationKey encodes a pick independently of order: (12,5) and (5,12) both give "5-12".
func CombinationKey(a, b int) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d-%d", a, b)
}

// ValidateNumbers checks a pick against the active game rules.
func (c *GameConfig) ValidateNumbers(a, b int) error {
	if a < 1 || a > c.MaxNumber || b < 1 || b > c.MaxNumber {
		return fmt.Errorf("%w: numbers must be between 1 and %d", ErrInvalidNumbers, c.MaxNumber)
	}
	if !c.AllowRepeat && a == b {
		return fmt.Errorf("%w: repeated numbers are not allowed", ErrInvalidNumbers)
	}
	return nil
}

// IsCents reports whether amount fits the two-decimal money columns without rounding.
func IsCents(amount decimal.Decimal) bool {
	return amount.Equal(amount.Round(2))
}

func (c *GameConfig) ValidateAmount(amount decimal.Decimal) error {
	if !IsCents(amount) {
		return fmt.Errorf("%w: amount %s has more than two decimal places", ErrInvalidAmount, amount)
	}
	if amount.LessThan(c.MinBet) || amount.GreaterThan(c.MaxBet) {
		return fmt.Errorf("%w: amount must be between %s and %s",
			ErrInvalidAmount, c.MinBet.StringFixed(2), c.MaxBet.StringFixed(2))
	}
	return nil
}

// NewBetReference builds YYYYMMDD-{MRN|AFT|EVN}-XXXXXXXX with a random uppercase hex suffix.
func NewBetReference(drawDate time.Time, drawType DrawType) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%s-%s", drawDate.Format("20060102"), drawType.Tag(), suffix)
}

// CommissionReference is the ledger reference for a commission credit; unique per bet and role.
func CommissionReference(betReference string, t CommissionType) string {
	return fmt.Sprintf("COM-%s-%s", betReference, t)
}

func PayoutReference(betReference string) string {
	return "PAY-" + betReference
}

func RefundReference(betReference string) string {
	return "RFD-" + betReference
}
