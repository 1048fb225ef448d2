package model

import (
	"fmt"
	"strconv"
	"strings"
)

// EuroCoin is a single coin entry. Structural fields (year, value, country,
// mint) are immutable after construction because they feed into the coin id;
// only the description may change afterwards.
type EuroCoin struct {
	id           string
	year         int
	value        CoinValue
	mintCountry  CoinCountry
	mint         Mint
	description  CoinDescription
	collectionID string
}

func (c *EuroCoin) ID() string {
	return c.id
}

func (c *EuroCoin) Year() int {
	return c.year
}

func (c *EuroCoin) Value() CoinValue {
	return c.value
}

func (c *EuroCoin) MintCountry() CoinCountry {
	return c.mintCountry
}

func (c *EuroCoin) Mint() Mint {
	return c.mint
}

func (c *EuroCoin) Description() CoinDescription {
	return c.description
}

func (c *EuroCoin) SetDescription(description CoinDescription) {
	c.description = description
}

func (c *EuroCoin) CollectionID() string {
	return c.collectionID
}

func (c *EuroCoin) SetCollectionID(collectionID string) {
	c.collectionID = collectionID
}

// idSeparator joins the identity tokens. It cannot occur in any enumerated
// token and survives description normalization, so identical content always
// produces the identical id and distinct token sequences never collide.
const idSeparator = "|"

// missingMintToken stands in for an absent mint in the identity string.
const missingMintToken = "UNKNOWN"

// DeriveCoinID computes the deterministic, content-derived coin id:
// the country ISO code, cent value, year, mint mark (or "UNKNOWN") and the
// normalized description joined by "|". Normalization upper-cases the
// description, collapses whitespace runs to a single space and trims the
// ends. Two coins with identical content always share one id.
func DeriveCoinID(country CoinCountry, value CoinValue, year int, mint Mint, description CoinDescription) string {
	mintToken := missingMintToken
	if !mint.IsZero() {
		mintToken = mint.MintMark()
	}

	return strings.Join([]string{
		country.IsoCode(),
		strconv.Itoa(value.CentValue()),
		strconv.Itoa(year),
		mintToken,
		normalizeDescription(description.Text()),
	}, idSeparator)
}

func normalizeDescription(text string) string {
	return strings.ToUpper(strings.Join(strings.Fields(text), " "))
}

// CoinBuilder accumulates coin attributes and validates them on Build. It is
// the single construction path for coins, so the identity invariant cannot be
// bypassed: a generated id is always derived from the validated content.
type CoinBuilder struct {
	id           string
	year         int
	value        CoinValue
	mintCountry  CoinCountry
	mint         Mint
	description  CoinDescription
	hasDesc      bool
	collectionID string
}

func NewCoinBuilder() *CoinBuilder {
	return &CoinBuilder{}
}

func (b *CoinBuilder) Year(year int) *CoinBuilder {
	b.year = year
	return b
}

func (b *CoinBuilder) Value(value CoinValue) *CoinBuilder {
	b.value = value
	return b
}

func (b *CoinBuilder) MintCountry(country CoinCountry) *CoinBuilder {
	b.mintCountry = country
	return b
}

func (b *CoinBuilder) Mint(mint Mint) *CoinBuilder {
	b.mint = mint
	return b
}

func (b *CoinBuilder) Description(description CoinDescription) *CoinBuilder {
	b.description = description
	b.hasDesc = true
	return b
}

func (b *CoinBuilder) CollectionID(collectionID string) *CoinBuilder {
	b.collectionID = collectionID
	return b
}

// id injects a pre-existing identifier during rehydration. Only the row
// factory uses this; freshly built coins always derive their id.
func (b *CoinBuilder) withID(id string) *CoinBuilder {
	b.id = id
	return b
}

// Build validates the accumulated fields, generates the description when none
// was supplied and derives the deterministic id.
func (b *CoinBuilder) Build() (*EuroCoin, error) {
	if b.year <= 0 {
		return nil, fmt.Errorf("%w: year must be greater than 0, got %d", ErrMissingRequiredField, b.year)
	}
	if b.value.IsZero() {
		return nil, fmt.Errorf("%w: coin value", ErrMissingRequiredField)
	}
	if b.mintCountry.IsZero() {
		return nil, fmt.Errorf("%w: mint country", ErrMissingRequiredField)
	}

	description := b.description
	if !b.hasDesc {
		generated, err := GenerateCoinDescription(b.value, b.year, b.mintCountry, b.mint)
		if err != nil {
			return nil, err
		}
		description = generated
	}

	id := b.id
	if id == "" {
		id = DeriveCoinID(b.mintCountry, b.value, b.year, b.mint, description)
	}

	return &EuroCoin{
		id:           id,
		year:         b.year,
		value:        b.value,
		mintCountry:  b.mintCountry,
		mint:         b.mint,
		description:  description,
		collectionID: b.collectionID,
	}, nil
}
