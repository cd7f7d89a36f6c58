// Package bitcoin derives Bitcoin keypairs for the vanity search.
// Supports P2TR (Taproot), P2PKH (Legacy), and P2SH-P2WPKH (Nested SegWit).
package bitcoin

import (
	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// Deriver derives Bitcoin keypairs of one address type, using the seed as
// the secp256k1 scalar.
type Deriver struct {
	AddressType generator.AddressType
}

// Derive returns the address and the WIF private key.
func (d Deriver) Derive(seed []byte) generator.Keypair {
	privKey, pubKey := btcec.PrivKeyFromBytes(seed)
	return generator.Keypair{
		Address:    DeriveAddress(pubKey, d.AddressType),
		PrivateKey: PrivateKeyToWIF(privKey),
	}
}

// AddressPrefix returns the fixed prefix every address of the type starts with.
func AddressPrefix(addrType generator.AddressType) string {
	switch addrType {
	case generator.AddressTypeLegacy:
		return "1"
	case generator.AddressTypeNestedSegWit:
		return "3"
	default:
		return "bc1p"
	}
}

// Charset returns the prefix and body alphabet of addresses of the type.
// Bech32 addresses are lowercase; Base58 ones are case-sensitive.
func Charset(addrType generator.AddressType) generator.Charset {
	body := generator.Base58Alphabet
	if IsBech32Type(addrType) {
		body = generator.Bech32Alphabet
	}
	return generator.Charset{Prefix: AddressPrefix(addrType), Body: body}
}

// IsBech32Type returns true if the address type uses Bech32/Bech32m encoding.
func IsBech32Type(addrType generator.AddressType) bool {
	return addrType == generator.AddressTypeTaproot || addrType == generator.AddressTypeDefault
}
