package model

import "fmt"

// Mint is a German mint identified by its mint mark letter.
type Mint struct {
	mintMark string
	city     string
}

var (
	Berlin    = Mint{"A", "Berlin"}
	Munich    = Mint{"D", "Munich"}
	Stuttgart = Mint{"F", "Stuttgart"}
	Karlsruhe = Mint{"G", "Karlsruhe"}
	Hamburg   = Mint{"J", "Hamburg"}
)

// Mints lists every known mint, ordered by mark.
var Mints = []Mint{Berlin, Munich, Stuttgart, Karlsruhe, Hamburg}

var mintByMark = func() map[string]Mint {
	m := make(map[string]Mint, len(Mints))
	for _, mint := range Mints {
		m[mint.mintMark] = mint
	}
	return m
}()

func (m Mint) MintMark() string {
	return m.mintMark
}

func (m Mint) City() string {
	return m.city
}

func (m Mint) String() string {
	return m.mintMark
}

// IsZero reports whether the mint is the absent zero value. A coin without a
// mint mark is valid; a non-empty mark that matches no mint is not.
func (m Mint) IsZero() bool {
	return m.mintMark == ""
}

// MintFromMark looks up a mint by its mark letter. The empty mark never
// matches.
func MintFromMark(mark string) (Mint, error) {
	m, ok := mintByMark[mark]
	if !ok {
		return Mint{}, fmt.Errorf("%w: mint mark %q", ErrUnknownEnumValue, mark)
	}
	return m, nil
}
