// Package aptos derives Aptos keypairs for the vanity search.
package aptos

import (
	"crypto/ed25519"
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// Charset describes Aptos addresses: 0x and lowercase hex.
var Charset = generator.Charset{Prefix: "0x", Body: generator.LowerHexAlphabet}

// Deriver derives Aptos keypairs from Ed25519 seeds.
type Deriver struct{}

// Derive returns the 0x address and the hex encoded seed as private key.
func (Deriver) Derive(seed []byte) generator.Keypair {
	privKey := ed25519.NewKeyFromSeed(seed)
	return generator.Keypair{
		Address:    DeriveAddress(privKey.Public().(ed25519.PublicKey)),
		PrivateKey: hex.EncodeToString(privKey.Seed()),
	}
}

// DeriveAddress derives an Aptos address from an Ed25519 public key.
// Formula: SHA3-256(pubkey || 0x00), 0x00 being the single-signature scheme.
func DeriveAddress(pubKey []byte) string {
	data := make([]byte, len(pubKey)+1)
	copy(data, pubKey)

	hash := sha3.Sum256(data)
	return "0x" + hex.EncodeToString(hash[:])
}
