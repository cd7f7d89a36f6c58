package bitcoin

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

// Mainnet version bytes.
const (
	p2pkhVersion = 0x00
	p2shVersion  = 0x05
	wifVersion   = 0x80
)

// DeriveAddress derives a Bitcoin address from a public key based on the address type.
func DeriveAddress(pubKey *btcec.PublicKey, addrType generator.AddressType) string {
	switch addrType {
	case generator.AddressTypeLegacy:
		return base58.CheckEncode(hash160(pubKey.SerializeCompressed()), p2pkhVersion)
	case generator.AddressTypeNestedSegWit:
		// P2SH wrapping the witness program OP_0 <20-byte key hash>.
		program := append([]byte{0x00, 0x14}, hash160(pubKey.SerializeCompressed())...)
		return base58.CheckEncode(hash160(program), p2shVersion)
	default:
		return taprootAddress(pubKey)
	}
}

// taprootAddress creates a key-path only P2TR address (BIP-341/BIP-86):
// bech32m("bc", 1, x(P + H_TapTweak(x(P))*G)).
func taprootAddress(pubKey *btcec.PublicKey) string {
	data, err := bech32.ConvertBits(TaprootOutputKey(pubKey), 8, 5, true)
	if err != nil {
		return ""
	}
	addr, err := bech32.EncodeM("bc", append([]byte{0x01}, data...))
	if err != nil {
		return ""
	}
	return addr
}

// TaprootOutputKey returns the x-only tweaked output key for a key-path spend.
func TaprootOutputKey(pubKey *btcec.PublicKey) []byte {
	xOnly := schnorr.SerializePubKey(pubKey)

	// Lift to the even-Y point that the x-only key stands for.
	internal, err := schnorr.ParsePubKey(xOnly)
	if err != nil {
		return nil
	}

	tweak := chainhash.TaggedHash(chainhash.TagTapTweak, xOnly)
	var tweakScalar btcec.ModNScalar
	tweakScalar.SetByteSlice(tweak[:])

	var p, q btcec.JacobianPoint
	internal.AsJacobian(&p)
	btcec.ScalarBaseMultNonConst(&tweakScalar, &q)
	btcec.AddNonConst(&p, &q, &q)
	q.ToAffine()

	return schnorr.SerializePubKey(btcec.NewPublicKey(&q.X, &q.Y))
}

// PrivateKeyToWIF converts a private key to compressed Wallet Import Format
// (starts with K or L on mainnet).
func PrivateKeyToWIF(privKey *btcec.PrivateKey) string {
	return base58.CheckEncode(append(privKey.Serialize(), 0x01), wifVersion)
}

// hash160 computes RIPEMD160(SHA256(data)).
func hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(sha[:])
	return h.Sum(nil)
}
