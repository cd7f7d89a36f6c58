// Package tron derives Tron keypairs for the vanity search.
package tron

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// MainnetPrefix is the address version byte for Tron mainnet.
const MainnetPrefix = 0x41

// Charset describes Tron addresses. The 0x41 version byte always encodes to a leading T.
var Charset = generator.Charset{Prefix: "T", Body: generator.Base58Alphabet}

// Deriver derives Tron keypairs, using the seed as the secp256k1 scalar.
type Deriver struct{}

// Derive returns the Base58Check address (always starting with 'T') and
// the hex private key.
func (Deriver) Derive(seed []byte) generator.Keypair {
	privKey, pubKey := btcec.PrivKeyFromBytes(seed)

	return generator.Keypair{
		Address:    DeriveAddress(pubKey.SerializeUncompressed()),
		PrivateKey: hex.EncodeToString(privKey.Serialize()),
	}
}

// DeriveAddress computes Base58Check(0x41 || last 20 bytes of
// Keccak256(X || Y)) from a 65-byte uncompressed public key.
func DeriveAddress(uncompressed []byte) string {
	hash := crypto.Keccak256(uncompressed[1:])
	return base58.CheckEncode(hash[len(hash)-20:], MainnetPrefix)
}
