// Package solana derives Solana keypairs for the vanity search.
package solana

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// Charset describes Solana addresses: plain Base58, no prefix.
// Addresses are Base58 and case-sensitive on chain.
var Charset = generator.Charset{Body: generator.Base58Alphabet}

// Deriver derives Solana keypairs from 32-byte Ed25519 seeds.
type Deriver struct{}

// Derive returns the Base58 public key as the address and the Base58 encoded
// 64-byte secret key (seed followed by public key), the format Solana
// wallets import.
func (Deriver) Derive(seed []byte) generator.Keypair {
	privKey := ed25519.NewKeyFromSeed(seed)
	pubKey := privKey.Public().(ed25519.PublicKey)

	return generator.Keypair{
		Address:    base58.Encode(pubKey),
		PrivateKey: base58.Encode(privKey),
	}
}
