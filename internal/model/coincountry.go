package model

import "fmt"

// CoinCountry is a Euro issuing country, identified by its ISO 3166-1
// alpha-2 code.
type CoinCountry struct {
	isoCode     string
	displayName string
}

var (
	Andorra     = CoinCountry{"AD", "Andorra"}
	Austria     = CoinCountry{"AT", "Austria"}
	Belgium     = CoinCountry{"BE", "Belgium"}
	Bulgaria    = CoinCountry{"BG", "Bulgaria"}
	Cyprus      = CoinCountry{"CY", "Cyprus"}
	Germany     = CoinCountry{"DE", "Germany"}
	Estonia     = CoinCountry{"EE", "Estonia"}
	Spain       = CoinCountry{"ES", "Spain"}
	Finland     = CoinCountry{"FI", "Finland"}
	France      = CoinCountry{"FR", "France"}
	Greece      = CoinCountry{"GR", "Greece"}
	Ireland     = CoinCountry{"IE", "Ireland"}
	Italy       = CoinCountry{"IT", "Italy"}
	Lithuania   = CoinCountry{"LT", "Lithuania"}
	Luxembourg  = CoinCountry{"LU", "Luxembourg"}
	Latvia      = CoinCountry{"LV", "Latvia"}
	Monaco      = CoinCountry{"MC", "Monaco"}
	Malta       = CoinCountry{"MT", "Malta"}
	Netherlands = CoinCountry{"NL", "Netherlands"}
	Portugal    = CoinCountry{"PT", "Portugal"}
	Slovenia    = CoinCountry{"SI", "Slovenia"}
	Slovakia    = CoinCountry{"SK", "Slovakia"}
	SanMarino   = CoinCountry{"SM", "San Marino"}
	VaticanCity = CoinCountry{"VA", "Vatican City"}
)

// CoinCountries lists every issuing country, ordered by ISO code.
var CoinCountries = []CoinCountry{
	Andorra, Austria, Belgium, Bulgaria, Cyprus, Germany, Estonia, Spain,
	Finland, France, Greece, Ireland, Italy, Lithuania, Luxembourg, Latvia,
	Monaco, Malta, Netherlands, Portugal, Slovenia, Slovakia, SanMarino,
	VaticanCity,
}

var countryByCode = func() map[string]CoinCountry {
	m := make(map[string]CoinCountry, len(CoinCountries))
	for _, c := range CoinCountries {
		m[c.isoCode] = c
	}
	return m
}()

func (c CoinCountry) IsoCode() string {
	return c.isoCode
}

func (c CoinCountry) DisplayName() string {
	return c.displayName
}

func (c CoinCountry) String() string {
	return c.isoCode
}

// IsZero reports whether the country is the absent zero value.
func (c CoinCountry) IsZero() bool {
	return c.isoCode == ""
}

// CoinCountryFromIsoCode looks up an issuing country by ISO code. The empty
// code never matches.
func CoinCountryFromIsoCode(code string) (CoinCountry, error) {
	c, ok := countryByCode[code]
	if !ok {
		return CoinCountry{}, fmt.Errorf("%w: ISO code %q", ErrUnknownEnumValue, code)
	}
	return c, nil
}
