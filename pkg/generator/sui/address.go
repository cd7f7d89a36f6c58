// Package sui derives Sui keypairs for the vanity search.
package sui

import (
	"crypto/ed25519"
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/blake2b"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// ed25519Flag is the Sui signature scheme flag for Ed25519.
const ed25519Flag = 0x00

// Charset describes Sui addresses: 0x and lowercase hex.
var Charset = generator.Charset{Prefix: "0x", Body: generator.LowerHexAlphabet}

// Deriver derives Sui keypairs from Ed25519 seeds.
type Deriver struct{}

// Derive returns the 0x address and the bech32 "suiprivkey" private key.
func (Deriver) Derive(seed []byte) generator.Keypair {
	privKey := ed25519.NewKeyFromSeed(seed)
	return generator.Keypair{
		Address:    DeriveAddress(privKey.Public().(ed25519.PublicKey)),
		PrivateKey: EncodePrivateKey(privKey.Seed()),
	}
}

// DeriveAddress computes Blake2b-256(flag || pubkey) as a 0x hex string.
func DeriveAddress(pubKey []byte) string {
	data := make([]byte, len(pubKey)+1)
	data[0] = ed25519Flag
	copy(data[1:], pubKey)

	hash := blake2b.Sum256(data)
	return "0x" + hex.EncodeToString(hash[:])
}

// EncodePrivateKey renders flag || seed in the bech32 format Sui wallets import.
func EncodePrivateKey(seed []byte) string {
	data, err := bech32.ConvertBits(append([]byte{ed25519Flag}, seed...), 8, 5, true)
	if err != nil {
		return ""
	}
	key, err := bech32.Encode("suiprivkey", data)
	if err != nil {
		return ""
	}
	return key
}
