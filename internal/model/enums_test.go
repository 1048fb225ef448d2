package model

import (
	"errors"
	"testing"
)

func TestCoinValueFromCents(t *testing.T) {
	for _, value := range CoinValues {
		got, err := CoinValueFromCents(value.CentValue())
		if err != nil {
			t.Fatalf("Lookup for %d cents failed: %v", value.CentValue(), err)
		}
		if got != value {
			t.Errorf("Expected %v for %d cents, got %v", value, value.CentValue(), got)
		}
	}
}

func TestCoinValueFromCents_Unknown(t *testing.T) {
	for _, cents := range []int{0, 3, 25, 500, -1} {
		if _, err := CoinValueFromCents(cents); !errors.Is(err, ErrUnknownEnumValue) {
			t.Errorf("Expected ErrUnknownEnumValue for %d cents, got %v", cents, err)
		}
	}
}

func TestCoinCountryFromIsoCode(t *testing.T) {
	for _, country := range CoinCountries {
		got, err := CoinCountryFromIsoCode(country.IsoCode())
		if err != nil {
			t.Fatalf("Lookup for %q failed: %v", country.IsoCode(), err)
		}
		if got != country {
			t.Errorf("Expected %v for %q, got %v", country, country.IsoCode(), got)
		}
	}
}

func TestCoinCountryFromIsoCode_Unknown(t *testing.T) {
	for _, code := range []string{"", "XX", "de", "GERMANY"} {
		if _, err := CoinCountryFromIsoCode(code); !errors.Is(err, ErrUnknownEnumValue) {
			t.Errorf("Expected ErrUnknownEnumValue for %q, got %v", code, err)
		}
	}
}

func TestMintFromMark(t *testing.T) {
	for _, mint := range Mints {
		got, err := MintFromMark(mint.MintMark())
		if err != nil {
			t.Fatalf("Lookup for %q failed: %v", mint.MintMark(), err)
		}
		if got != mint {
			t.Errorf("Expected %v for %q, got %v", mint, mint.MintMark(), got)
		}
	}
}

func TestMintFromMark_Unknown(t *testing.T) {
	for _, mark := range []string{"", "B", "a", "Berlin"} {
		if _, err := MintFromMark(mark); !errors.Is(err, ErrUnknownEnumValue) {
			t.Errorf("Expected ErrUnknownEnumValue for %q, got %v", mark, err)
		}
	}
}
