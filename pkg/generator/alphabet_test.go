package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase58Invalid(t *testing.T) {
	// 0, O and I never appear; l does not either when matching case-sensitively.
	assert.Equal(t, []rune("0OIl"), Base58Alphabet.Invalid("a0OIlb", true))

	// Lowercased, O and I fold onto o and i, and L folds onto l.
	assert.Equal(t, []rune("0"), Base58Alphabet.Invalid("a0OIlb", false))
	assert.Empty(t, Base58Alphabet.Invalid("moon", false))
}

func TestHexInvalid(t *testing.T) {
	assert.Empty(t, HexAlphabet.Invalid("dEaD", true))
	assert.Equal(t, []rune("g"), HexAlphabet.Invalid("beg", false))
	assert.Equal(t, []rune("x"), LowerHexAlphabet.Invalid("0xab", false))
}

func TestCharsetPrefixOnlyAtStart(t *testing.T) {
	hex := Charset{Prefix: "0x", Body: HexAlphabet}
	taproot := Charset{Prefix: "bc1p", Body: Bech32Alphabet}

	tests := []struct {
		name    string
		charset Charset
		term    string
		invalid []rune
	}{
		{"body only", hex, "beef", nil},
		{"whole prefix", hex, "0x", nil},
		{"prefix into body", hex, "0xbeef", nil},
		{"prefix tail into body", hex, "xbeef", nil},
		{"prefix char in body", hex, "ax", []rune("x")},
		{"prefix char twice", hex, "0x0x", []rune("xx")},
		{"bech32 prefix", taproot, "bc1p", nil},
		{"bech32 prefix tail", taproot, "1pqz", nil},
		{"bech32 prefix chars in body", taproot, "1b", []rune("1b")},
		{"bech32 wrong order", taproot, "pbc", []rune("b")},
		{"no prefix", Charset{Body: Base58Alphabet}, "0", []rune("0")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.invalid, tt.charset.Invalid(tt.term, false))
		})
	}
}

func TestCharsetCaseFolding(t *testing.T) {
	hex := Charset{Prefix: "0x", Body: HexAlphabet}
	assert.Empty(t, hex.Invalid("0XBEEF", false))
	assert.Equal(t, []rune("X"), hex.Invalid("0XBEEF", true))
}

func TestCharsetValidate(t *testing.T) {
	hex := Charset{Prefix: "0x", Body: LowerHexAlphabet}
	assert.NoError(t, hex.Validate([]string{"0xcafe", "beef"}, false))

	var ic *InvalidCharsError
	require.ErrorAs(t, hex.Validate([]string{"beef", "ax"}, false), &ic)
	assert.Equal(t, "ax", ic.Term)
	assert.Equal(t, []rune("x"), ic.Chars)
}

func TestValidateReturnsTypedError(t *testing.T) {
	err := Base58Alphabet.Validate([]string{"moon", "s0l"}, true)
	require.Error(t, err)

	var ic *InvalidCharsError
	require.ErrorAs(t, err, &ic)
	assert.Equal(t, "s0l", ic.Term)
	assert.Equal(t, []rune("0l"), ic.Chars)

	assert.NoError(t, Base58Alphabet.Validate([]string{"moon"}, false))
}
