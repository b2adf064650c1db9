package catalog

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

const currencySign = "₽"

// PriceLabel renders whole roubles with a space as thousands separator: "2 000 ₽".
func PriceLabel(price int64) string {
	return humanize.FormatInteger("# ###.", int(price)) + " " + currencySign
}

// DurationLabel renders minutes as "1 ч. 30 мин.", dropping a zero part.
func DurationLabel(minutes int) string {
	if minutes <= 0 {
		return "0 мин."
	}
	hours, rest := minutes/60, minutes%60
	switch {
	case hours == 0:
		return fmt.Sprintf("%d мин.", rest)
	case rest == 0:
		return fmt.Sprintf("%d ч.", hours)
	default:
		return fmt.Sprintf("%d ч. %d мин.", hours, rest)
	}
}
