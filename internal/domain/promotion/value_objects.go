package promotion

import (
	"errors"
	"math"
	"regexp"
	"strings"
)

var (
	ErrInvalidCode            = errors.New("invalid promo code format")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

type Code string

// NewCode normalizes user input; lookups are case-insensitive because codes are stored uppercased.
func NewCode(code string) (Code, error) {
	code = NormalizeCode(code)
	if !codeRegex.MatchString(code) {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (c Code) String() string {
	return string(c)
}

// Discount may carry both fields because storage does not forbid it; percent wins.
type Discount struct {
	percent *float64
	amount  *int64
}

func NewDiscount(percent *float64, amount *int64) (Discount, error) {
	if percent != nil && (*percent < 0 || *percent > 100) {
		return Discount{}, ErrInvalidDiscountPercent
	}
	if amount != nil && *amount < 0 {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{percent: percent, amount: amount}, nil
}

func NewPercentDiscount(percent float64) (Discount, error) {
	return NewDiscount(&percent, nil)
}

func NewFixedDiscount(amount int64) (Discount, error) {
	return NewDiscount(nil, &amount)
}

func NoDiscount() Discount {
	return Discount{}
}

func (d Discount) IsPercent() bool { return d.percent != nil }
func (d Discount) IsFixed() bool   { return d.percent == nil && d.amount != nil }
func (d Discount) IsZero() bool    { return d.percent == nil && d.amount == nil }

func (d Discount) Percent() *float64 { return d.percent }
func (d Discount) Amount() *int64    { return d.amount }

// Apply returns the price to pay. The result always stays within [0, price].
func (d Discount) Apply(price int64) int64 {
	switch {
	case d.percent != nil:
		discounted := int64(math.Round(float64(price) * (1 - *d.percent/100)))
		return min(max(discounted, 0), price)
	case d.amount != nil:
		return max(0, price-*d.amount)
	default:
		return price
	}
}
