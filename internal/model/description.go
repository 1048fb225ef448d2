package model

import "fmt"

// CoinDescription wraps the textual description of a coin. It is either
// supplied verbatim or generated from the coin's attributes.
type CoinDescription struct {
	text string
}

// NewCoinDescription wraps an arbitrary text verbatim.
func NewCoinDescription(text string) CoinDescription {
	return CoinDescription{text: text}
}

// GenerateCoinDescription builds the default description sentence from coin
// attributes, e.g. "1 Euro coin from Germany from the year 2024 from mint A".
func GenerateCoinDescription(value CoinValue, year int, country CoinCountry, mint Mint) (CoinDescription, error) {
	if value.IsZero() {
		return CoinDescription{}, fmt.Errorf("%w: coin value is required", ErrInvalidDescription)
	}
	if country.IsZero() {
		return CoinDescription{}, fmt.Errorf("%w: coin country is required", ErrInvalidDescription)
	}
	if year <= 0 {
		return CoinDescription{}, fmt.Errorf("%w: year must be greater than 0, got %d", ErrInvalidDescription, year)
	}

	text := fmt.Sprintf("%s coin from %s from the year %d", value.DisplayName(), country.DisplayName(), year)
	if !mint.IsZero() {
		text += fmt.Sprintf(" from mint %s", mint.MintMark())
	}
	return CoinDescription{text: text}, nil
}

func (d CoinDescription) Text() string {
	return d.text
}

// SetText replaces the description text, e.g. to correct a typo after
// construction.
func (d *CoinDescription) SetText(text string) {
	d.text = text
}

func (d CoinDescription) String() string {
	return d.text
}
