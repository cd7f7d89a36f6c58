package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// ErrEntropy is returned when the random source cannot supply a seed.
var ErrEntropy = errors.New("entropy source unavailable")

// SeedSource supplies one seed per attempt.
type SeedSource interface {
	// Next returns SeedSize fresh random bytes. The slice is only valid
	// until the next call.
	Next() ([]byte, error)
}

// RandomSeedSource reads seeds from a cryptographically secure reader into
// a buffer it owns. Each worker gets its own instance.
type RandomSeedSource struct {
	r   io.Reader
	buf [SeedSize]byte
}

// NewRandomSeedSource creates a seed source backed by crypto/rand.
func NewRandomSeedSource() *RandomSeedSource {
	return NewSeedSourceFrom(rand.Reader)
}

// NewSeedSourceFrom creates a seed source reading from r. r must be a
// cryptographically secure source; it is exposed for tests.
func NewSeedSourceFrom(r io.Reader) *RandomSeedSource {
	return &RandomSeedSource{r: r}
}

// Next fills the buffer with fresh random bytes.
func (s *RandomSeedSource) Next() ([]byte, error) {
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return s.buf[:], nil
}
