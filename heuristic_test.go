package pgglance_test

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/pgglance/pgglance"
	"github.com/stretchr/testify/assert"
)

func TestClassifyTextPassthrough(t *testing.T) {
	decoder := pgglance.NewDecoder()

	assert.Equal(t, "hello world", decoder.Classify([]byte("hello world")))
	assert.Equal(t, "héllo", decoder.Classify([]byte("héllo")))
}

func TestClassifyLargeBinary(t *testing.T) {
	decoder := pgglance.NewDecoder()

	src := bytes.Repeat([]byte{0xab}, 10000)
	assert.Equal(t, "(large binary data)", decoder.Classify(src))

	// One byte under the limit is still inspected.
	src = bytes.Repeat([]byte("a"), 9999)
	assert.Equal(t, string(src), decoder.Classify(src))
}

func TestClassifyNulHeavySmallRendersHex(t *testing.T) {
	decoder := pgglance.NewDecoder()

	src := bytes.Repeat([]byte{0, 0xde}, 10)
	assert.Equal(t, "0x"+hex.EncodeToString(src), decoder.Classify(src))
}

func TestClassifyNulHeavyLargeRendersPlaceholder(t *testing.T) {
	decoder := pgglance.NewDecoder()

	src := bytes.Repeat([]byte{0, 0xde}, 20)
	assert.Equal(t, "(binary data)", decoder.Classify(src))
}

func TestClassifySubstringExtraction(t *testing.T) {
	decoder := pgglance.NewDecoder()

	// One NUL in eleven bytes is under the binary detection ratio, and the
	// NUL makes the whole buffer invalid as display text, so the printable
	// runs on either side are extracted.
	src := []byte("hello\x00world")
	assert.Equal(t, `["hello", "world"]`, decoder.Classify(src))

	// Runs that are mostly unprintable are dropped.
	src = append([]byte("label\x00"), 0x80, 0x81, 0x82, 0x83)
	assert.Equal(t, `["label"]`, decoder.Classify(src))
}

func TestClassifyNoValidSubstrings(t *testing.T) {
	decoder := pgglance.NewDecoder()

	// Invalid UTF-8 without NUL bytes: not binary by the peek, not text,
	// and the single run is not printable enough.
	small := bytes.Repeat([]byte{0xc3, 0x28}, 5)
	assert.Equal(t, "0x"+hex.EncodeToString(small), decoder.Classify(small))

	big := bytes.Repeat([]byte{0xc3, 0x28}, 50)
	assert.Equal(t, base64.StdEncoding.EncodeToString(big), decoder.Classify(big))
}
