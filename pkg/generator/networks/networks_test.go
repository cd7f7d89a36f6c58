package networks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

func TestLookupEveryNetwork(t *testing.T) {
	seed := make([]byte, generator.SeedSize)
	seed[31] = 7

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			p, err := Lookup(name, "")
			require.NoError(t, err)
			require.NotNil(t, p.Deriver)

			kp := p.Deriver.Derive(seed)
			assert.NotEmpty(t, kp.Address)
			assert.NotEmpty(t, kp.PrivateKey)
			assert.Equal(t, kp, p.Deriver.Derive(seed), "derivation must be deterministic")
			assert.Empty(t, p.Charset.Invalid(kp.Address, true), "address %s outside charset", kp.Address)
		})
	}
}

func TestLookupAliases(t *testing.T) {
	p, err := Lookup("SOL", "")
	require.NoError(t, err)
	assert.Equal(t, generator.Solana, p.Network)

	p, err = Lookup("btc", "")
	require.NoError(t, err)
	assert.Equal(t, generator.AddressTypeTaproot, p.AddressType)
	assert.Equal(t, "Bitcoin Taproot (P2TR)", p.Name())

	p, err = Lookup("bitcoin", "legacy")
	require.NoError(t, err)
	assert.Equal(t, generator.Charset{Prefix: "1", Body: generator.Base58Alphabet}, p.Charset)
}

func TestLookupErrors(t *testing.T) {
	_, err := Lookup("dogecoin", "")
	assert.Error(t, err)

	_, err = Lookup("bitcoin", "segwit-v9")
	assert.Error(t, err)
}
