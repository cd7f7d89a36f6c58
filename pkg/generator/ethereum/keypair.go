// Package ethereum derives Ethereum keypairs for the vanity search.
package ethereum

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// Charset describes Ethereum addresses: 0x and EIP-55 mixed-case hex.
var Charset = generator.Charset{Prefix: "0x", Body: generator.HexAlphabet}

// Deriver derives Ethereum keypairs, using the seed as the secp256k1 scalar.
type Deriver struct{}

// Derive returns the checksummed 0x address and the hex private key.
func (Deriver) Derive(seed []byte) generator.Keypair {
	privKey, pubKey := btcec.PrivKeyFromBytes(seed)
	address := crypto.PubkeyToAddress(*pubKey.ToECDSA())

	return generator.Keypair{
		Address:    address.Hex(),
		PrivateKey: hex.EncodeToString(crypto.FromECDSA(privKey.ToECDSA())),
	}
}
