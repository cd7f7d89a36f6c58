// Package generator defines the types shared by the vanity search engine.
// Workers, the coordinator and the per-network key derivers only talk to
// each other through the values declared here.
package generator

import (
	"context"
	"time"
)

// Network represents the blockchain network for address generation.
type Network int

const (
	Solana   Network = iota // Solana (Ed25519, Base58)
	Ethereum                // Ethereum (secp256k1, Keccak-256, Hex)
	Aptos                   // Aptos (Ed25519, SHA3-256, Hex)
	Sui                     // Sui (Ed25519, Blake2b-256, Hex)
	Bitcoin                 // Bitcoin (secp256k1, SHA256+RIPEMD160, Base58/Bech32)
	Tron                    // Tron (secp256k1, Keccak-256, Base58Check)
)

// String returns the network name.
func (n Network) String() string {
	switch n {
	case Solana:
		return "Solana"
	case Ethereum:
		return "Ethereum"
	case Aptos:
		return "Aptos"
	case Sui:
		return "Sui"
	case Bitcoin:
		return "Bitcoin"
	case Tron:
		return "Tron"
	default:
		return "Unknown"
	}
}

// AddressType represents the Bitcoin address format.
type AddressType int

const (
	AddressTypeDefault      AddressType = iota // Default for network (P2TR for Bitcoin)
	AddressTypeTaproot                         // P2TR - Taproot (bc1p...)
	AddressTypeLegacy                          // P2PKH - Legacy (1...)
	AddressTypeNestedSegWit                    // P2SH-P2WPKH - Nested SegWit (3...)
)

// String returns the address type name.
func (a AddressType) String() string {
	switch a {
	case AddressTypeTaproot:
		return "Taproot (P2TR)"
	case AddressTypeLegacy:
		return "Legacy (P2PKH)"
	case AddressTypeNestedSegWit:
		return "Nested SegWit (P2SH)"
	default:
		return "Default"
	}
}

// SeedSize is the length of every seed handed to a KeyDeriver.
const SeedSize = 32

// Keypair is a derived public address and its display-encoded private key.
type Keypair struct {
	Address    string // Public identifier, as rendered by the network
	PrivateKey string // Private secret, encoded for display
}

// KeyDeriver turns a seed into a keypair. Implementations must be pure:
// the same seed always yields the same keypair.
type KeyDeriver interface {
	Derive(seed []byte) Keypair
}

// KeyDeriverFunc adapts a plain function to the KeyDeriver interface.
type KeyDeriverFunc func(seed []byte) Keypair

// Derive calls f(seed).
func (f KeyDeriverFunc) Derive(seed []byte) Keypair {
	return f(seed)
}

// Event is a message sent from a worker to the coordinator.
type Event interface {
	Worker() int
}

// MatchEvent reports an address that contains one of the target terms.
type MatchEvent struct {
	WorkerID   int
	Address    string
	PrivateKey string
	Term       string
}

// ProgressEvent reports attempts made since the worker's previous report.
type ProgressEvent struct {
	WorkerID int
	Attempts uint64
}

// WorkerFailedEvent reports that a worker stopped because it could not continue.
type WorkerFailedEvent struct {
	WorkerID int
	Err      error
}

// Worker returns the id of the reporting worker.
func (e MatchEvent) Worker() int { return e.WorkerID }

// Worker returns the id of the reporting worker.
func (e ProgressEvent) Worker() int { return e.WorkerID }

// Worker returns the id of the reporting worker.
func (e WorkerFailedEvent) Worker() int { return e.WorkerID }

// ResultRecord is an accepted match. Records are never modified after creation.
type ResultRecord struct {
	ID         int       // Sequential, starting at 1
	Address    string    // Public address
	PrivateKey string    // Display-encoded private key
	Term       string    // Matched term, as normalized
	Quality    int       // Heuristic score, see Matcher.Score
	Timestamp  time.Time // When the coordinator recorded it
	Attempts   uint64    // Cumulative attempts across the run at that moment
}

// Snapshot holds the aggregate numbers persisted alongside results.
type Snapshot struct {
	Found    int
	Attempts uint64
	Rate     float64 // Attempts per second since the run started
}

// Progress is what the coordinator publishes to the progress display.
type Progress struct {
	Attempts      uint64        // Cumulative attempts
	RollingRate   float64       // Mean of the recent rate samples
	Found         int           // Results recorded so far
	Elapsed       time.Duration // Time since the run started
	ActiveWorkers int           // Workers still searching
}

// RunInfo describes a run to the persistence collaborator before it starts.
type RunInfo struct {
	Network       string
	Terms         []string
	CaseSensitive bool
	StartTime     time.Time
}

// ResultSink persists accepted results. Errors are reported back to the
// coordinator, which logs them and keeps searching.
type ResultSink interface {
	Begin(info RunInfo) error
	Record(rec ResultRecord, stats Snapshot) error
	Finish(stats Snapshot) error
}

// Generator defines the contract for search backends.
type Generator interface {
	// Run searches until the result limit is reached, the context is
	// cancelled, the timeout expires or every worker has failed.
	Run(ctx context.Context) (*Summary, error)

	// Progress returns the channel progress updates are published on.
	Progress() <-chan Progress

	// Name returns the implementation name (e.g., "CPU").
	Name() string
}
