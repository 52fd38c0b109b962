package kernel

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when a zero-value Money is validated.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney, MoneyFromString or ZeroMoney")

// MoneyScale is the number of decimal places an amount may carry.
const MoneyScale = 2

// Money is a non-negative decimal amount with at most MoneyScale decimal
// places. All arithmetic is exact, so a sum of line totals never drifts the
// way float64 would:
//
//	a, _ := kernel.MoneyFromString("5.0")
//	b, _ := kernel.MoneyFromString("3.5")
//	total := a.MulQuantity(2).Add(b) // 13.5
type Money struct { //nolint:recvcheck // value object
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// ZeroMoney returns a constructed amount of 0.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// NewMoney wraps a decimal amount. Negative amounts and amounts with more
// than MoneyScale decimal places are rejected; "3.500" is accepted as 3.5.
//
// Example:
//
//	price, err := kernel.NewMoney(decimal.RequireFromString("0.333"))
//	// errors.Is(err, errs.ErrValueIsInvalid) == true
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), "0", "unbounded")
	}
	if !amount.Equal(amount.Truncate(MoneyScale)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s has more than %d decimal places", amount.String(), MoneyScale))
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// MoneyFromString parses a decimal literal such as "12.50".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a decimal: %w", s, err))
	}
	return NewMoney(amount)
}

// MustMoney is MoneyFromString for literals known to be valid. It panics otherwise.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Validate reports whether the value was built by a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying decimal.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

// MulQuantity returns m × quantity. Callers pass positive quantities only.
func (m Money) MulQuantity(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), guard: guard.NewConstructorGuard()}
}

// IsEqual compares amounts numerically, so 13.5 equals 13.50.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is 0.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String returns the shortest decimal representation, e.g. "13.5".
func (m Money) String() string {
	return m.amount.String()
}
