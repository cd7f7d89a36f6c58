package generator

import (
	"fmt"
	"strings"
)

// Common address alphabets. They cover the encoded body of an address only;
// fixed prefixes such as "0x" or "bc1p" are described by Charset.Prefix.
const (
	// Base58Alphabet is the Bitcoin/Solana alphabet (excludes 0, O, I, l).
	Base58Alphabet Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	// HexAlphabet covers hex digits in either case
	// (Ethereum renders a mixed-case checksum).
	HexAlphabet Alphabet = "0123456789abcdefABCDEF"

	// LowerHexAlphabet covers lowercase hex digits.
	LowerHexAlphabet Alphabet = "0123456789abcdef"

	// Bech32Alphabet is the Bech32 data charset.
	Bech32Alphabet Alphabet = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
)

// Alphabet is the set of characters that can appear in an address body.
type Alphabet string

// Invalid returns the characters of term that are not in the alphabet.
// Without case sensitivity a character is valid if its lowercase form
// appears in the lowercased alphabet, since addresses are lowercased too.
func (a Alphabet) Invalid(term string, caseSensitive bool) []rune {
	set := string(a)
	if !caseSensitive {
		set = strings.ToLower(set)
		term = strings.ToLower(term)
	}
	var invalid []rune
	for _, c := range term {
		if !strings.ContainsRune(set, c) {
			invalid = append(invalid, c)
		}
	}
	return invalid
}

// Validate returns an *InvalidCharsError for the first term that contains
// characters outside the alphabet.
func (a Alphabet) Validate(terms []string, caseSensitive bool) error {
	return Charset{Body: a}.Validate(terms, caseSensitive)
}

// Charset describes every address of a format: a fixed Prefix followed by
// characters drawn from Body.
type Charset struct {
	Prefix string
	Body   Alphabet
}

// Invalid returns the characters that keep term from ever appearing in an
// address. Prefix characters only count where the prefix can supply them:
// "0xab" is possible for 0x-hex addresses, "ax" is not.
func (c Charset) Invalid(term string, caseSensitive bool) []rune {
	prefix := c.Prefix
	if !caseSensitive {
		prefix = strings.ToLower(prefix)
		term = strings.ToLower(term)
	}

	bad := c.Body.Invalid(term, caseSensitive)
	if len(bad) == 0 || prefix == "" {
		return bad
	}
	if strings.Contains(prefix, term) {
		return nil
	}
	// The term may start inside the prefix and run on into the body.
	for k := min(len(term), len(prefix)); k > 0; k-- {
		if strings.HasSuffix(prefix, term[:k]) && len(c.Body.Invalid(term[k:], caseSensitive)) == 0 {
			return nil
		}
	}
	return bad
}

// Validate returns an *InvalidCharsError for the first term that can never
// appear in an address.
func (c Charset) Validate(terms []string, caseSensitive bool) error {
	for _, term := range terms {
		if bad := c.Invalid(term, caseSensitive); len(bad) > 0 {
			return &InvalidCharsError{Term: term, Chars: bad}
		}
	}
	return nil
}

// InvalidCharsError represents a term that can never match because it uses
// characters the address encoding does not produce.
type InvalidCharsError struct {
	Term  string
	Chars []rune
}

// Error lists the offending term and characters.
func (e *InvalidCharsError) Error() string {
	return fmt.Sprintf("term %q contains characters that never appear in addresses: %q", e.Term, string(e.Chars))
}
