package aptos

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	seed := bytes.Repeat([]byte{1}, 32)
	kp := Deriver{}.Derive(seed)

	assert.True(t, strings.HasPrefix(kp.Address, "0x"))
	assert.Len(t, kp.Address, 66)
	assert.Equal(t, hex.EncodeToString(seed), kp.PrivateKey)
	assert.Equal(t, kp, Deriver{}.Derive(seed))
	assert.Empty(t, Charset.Invalid(kp.Address, true))
}
