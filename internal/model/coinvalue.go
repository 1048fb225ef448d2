package model

import "fmt"

// CoinValue is one of the eight Euro coin denominations, identified by its
// face value in cents.
type CoinValue struct {
	centValue   int
	displayName string
}

var (
	OneCent     = CoinValue{1, "1 Cent"}
	TwoCents    = CoinValue{2, "2 Cent"}
	FiveCents   = CoinValue{5, "5 Cent"}
	TenCents    = CoinValue{10, "10 Cent"}
	TwentyCents = CoinValue{20, "20 Cent"}
	FiftyCents  = CoinValue{50, "50 Cent"}
	OneEuro     = CoinValue{100, "1 Euro"}
	TwoEuros    = CoinValue{200, "2 Euro"}
)

// CoinValues lists every denomination in ascending order.
var CoinValues = []CoinValue{
	OneCent, TwoCents, FiveCents, TenCents,
	TwentyCents, FiftyCents, OneEuro, TwoEuros,
}

var valueByCents = func() map[int]CoinValue {
	m := make(map[int]CoinValue, len(CoinValues))
	for _, v := range CoinValues {
		m[v.centValue] = v
	}
	return m
}()

func (v CoinValue) CentValue() int {
	return v.centValue
}

func (v CoinValue) DisplayName() string {
	return v.displayName
}

func (v CoinValue) String() string {
	return v.displayName
}

// IsZero reports whether the value is the absent zero value, which is never a
// valid denomination.
func (v CoinValue) IsZero() bool {
	return v.centValue == 0
}

// CoinValueFromCents looks up a denomination by its cent value.
func CoinValueFromCents(centValue int) (CoinValue, error) {
	v, ok := valueByCents[centValue]
	if !ok {
		return CoinValue{}, fmt.Errorf("%w: cent value %d", ErrUnknownEnumValue, centValue)
	}
	return v, nil
}
