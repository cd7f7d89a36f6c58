// Package networks maps network names to their key derivers and address
// alphabets.
package networks

import (
	"fmt"
	"strings"

	"github.com/Amr-9/VanityHunter/pkg/generator"
	"github.com/Amr-9/VanityHunter/pkg/generator/aptos"
	"github.com/Amr-9/VanityHunter/pkg/generator/bitcoin"
	"github.com/Amr-9/VanityHunter/pkg/generator/ethereum"
	"github.com/Amr-9/VanityHunter/pkg/generator/solana"
	"github.com/Amr-9/VanityHunter/pkg/generator/sui"
	"github.com/Amr-9/VanityHunter/pkg/generator/tron"
)

// Profile bundles what the search engine needs to know about a network.
type Profile struct {
	Network     generator.Network
	AddressType generator.AddressType
	Deriver     generator.KeyDeriver
	Charset     generator.Charset
}

// Name returns a display name, including the Bitcoin address type.
func (p Profile) Name() string {
	if p.Network == generator.Bitcoin {
		return fmt.Sprintf("%s %s", p.Network, p.AddressType)
	}
	return p.Network.String()
}

var byName = map[string]generator.Network{
	"solana":   generator.Solana,
	"sol":      generator.Solana,
	"ethereum": generator.Ethereum,
	"eth":      generator.Ethereum,
	"tron":     generator.Tron,
	"trx":      generator.Tron,
	"bitcoin":  generator.Bitcoin,
	"btc":      generator.Bitcoin,
	"aptos":    generator.Aptos,
	"apt":      generator.Aptos,
	"sui":      generator.Sui,
}

// Names lists the canonical network names accepted by Lookup.
func Names() []string {
	return []string{"solana", "ethereum", "tron", "bitcoin", "aptos", "sui"}
}

// ParseNetwork converts a network name (or ticker) to a Network.
func ParseNetwork(name string) (generator.Network, error) {
	n, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown network %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
	return n, nil
}

// ParseAddressType converts a Bitcoin address type name to an AddressType.
// The empty string selects the network default.
func ParseAddressType(name string) (generator.AddressType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return generator.AddressTypeDefault, nil
	case "taproot", "p2tr":
		return generator.AddressTypeTaproot, nil
	case "legacy", "p2pkh":
		return generator.AddressTypeLegacy, nil
	case "nested-segwit", "p2sh":
		return generator.AddressTypeNestedSegWit, nil
	default:
		return 0, fmt.Errorf("unknown address type %q (want taproot, legacy or nested-segwit)", name)
	}
}

// For returns the profile of a network.
func For(network generator.Network, addrType generator.AddressType) (Profile, error) {
	p := Profile{Network: network, AddressType: addrType}
	switch network {
	case generator.Solana:
		p.Deriver, p.Charset = solana.Deriver{}, solana.Charset
	case generator.Ethereum:
		p.Deriver, p.Charset = ethereum.Deriver{}, ethereum.Charset
	case generator.Tron:
		p.Deriver, p.Charset = tron.Deriver{}, tron.Charset
	case generator.Aptos:
		p.Deriver, p.Charset = aptos.Deriver{}, aptos.Charset
	case generator.Sui:
		p.Deriver, p.Charset = sui.Deriver{}, sui.Charset
	case generator.Bitcoin:
		if addrType == generator.AddressTypeDefault {
			p.AddressType = generator.AddressTypeTaproot
		}
		p.Deriver = bitcoin.Deriver{AddressType: p.AddressType}
		p.Charset = bitcoin.Charset(p.AddressType)
	default:
		return Profile{}, fmt.Errorf("unsupported network %v", network)
	}
	return p, nil
}

// Lookup resolves a network name and Bitcoin address type to a profile.
func Lookup(name, addrType string) (Profile, error) {
	network, err := ParseNetwork(name)
	if err != nil {
		return Profile{}, err
	}
	at, err := ParseAddressType(addrType)
	if err != nil {
		return Profile{}, err
	}
	return For(network, at)
}
