package entity

import (
	"math"
	"strconv"
)

// Money is an amount in minor currency units (paise). It is stored as a
// plain integer column and rendered as a 2-decimal JSON number, so
// "price": 200.00 round-trips to 20000 paise with no float drift.
type Money int64

func MoneyFromFloat(major float64) Money {
	return Money(math.Round(major * 100))
}

// Paise returns the raw minor-unit value, which is what the payment
// gateway API speaks.
func (m Money) Paise() int64 { return int64(m) }

func (m Money) Float() float64 { return float64(m) / 100 }

func (m Money) String() string {
	return strconv.FormatFloat(m.Float(), 'f', 2, 64)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*m = MoneyFromFloat(f)
	return nil
}

// TaxOn computes rate*amount rounded half-up to the nearest paisa.
func TaxOn(amount Money, rate float64) Money {
	return Money(math.Floor(float64(amount)*rate + 0.5))
}
