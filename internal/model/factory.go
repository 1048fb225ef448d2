package model

import "fmt"

// Row types carry the raw column values of one persisted record. The
// factories below turn them into validated domain entities, preserving the
// stored identifiers verbatim. Freshly mapped aggregates start with an empty
// child sequence; children are loaded by separate repository calls.

type UserRow struct {
	ID   string
	Name string
}

type GroupRow struct {
	ID      string
	Name    string
	OwnerID string
}

type CollectionRow struct {
	ID      string
	Name    string
	GroupID string
}

type CoinRow struct {
	ID           string
	Year         int
	CentValue    int
	CountryCode  string
	MintMark     *string
	Description  string
	CollectionID string
}

// UserFromRow rehydrates a user from a persisted row.
func UserFromRow(row UserRow) (*User, error) {
	return newUser(row.ID, row.Name)
}

// GroupFromRow rehydrates a collection group from a persisted row.
func GroupFromRow(row GroupRow) (*CollectionGroup, error) {
	return newCollectionGroup(row.ID, row.Name, row.OwnerID)
}

// CollectionFromRow rehydrates a collection from a persisted row.
func CollectionFromRow(row CollectionRow) (*Collection, error) {
	return newCollection(row.ID, row.Name, row.GroupID)
}

// CoinFromRow rehydrates a coin from a persisted row. Enumerated fields are
// re-validated against the closed sets; the stored id is preserved verbatim.
func CoinFromRow(row CoinRow) (*EuroCoin, error) {
	if isBlank(row.ID) {
		return nil, fmt.Errorf("%w: coin id", ErrMissingRequiredField)
	}
	if isBlank(row.Description) {
		return nil, fmt.Errorf("%w: coin description", ErrMissingRequiredField)
	}

	value, err := CoinValueFromCents(row.CentValue)
	if err != nil {
		return nil, err
	}
	country, err := CoinCountryFromIsoCode(row.CountryCode)
	if err != nil {
		return nil, err
	}

	builder := NewCoinBuilder().
		withID(row.ID).
		Year(row.Year).
		Value(value).
		MintCountry(country).
		Description(NewCoinDescription(row.Description)).
		CollectionID(row.CollectionID)

	if row.MintMark != nil && *row.MintMark != "" {
		mint, err := MintFromMark(*row.MintMark)
		if err != nil {
			return nil, err
		}
		builder.Mint(mint)
	}

	return builder.Build()
}
