package pgglance

import (
	"testing"

	"github.com/jackc/pgio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTimestamp(t *testing.T) {
	tests := []struct {
		name            string
		microsecSince2K int64
		want            string
	}{
		{"epoch", 0, "2000-01-01T00:00:00.000000+00:00"},
		{"one day", 86400 * 1000000, "2000-01-02T00:00:00.000000+00:00"},
		{"fractional", 1500000, "2000-01-01T00:00:01.500000+00:00"},
		{"before epoch", -1000000, "1999-12-31T23:59:59.000000+00:00"},
		{"microsecond", 1, "2000-01-01T00:00:00.000001+00:00"},
	}
	for _, tt := range tests {
		src := pgio.AppendInt64(nil, tt.microsecSince2K)
		s, ok := decodeTimestamp(src)
		require.Truef(t, ok, "%s", tt.name)
		assert.Equalf(t, tt.want, s, "%s", tt.name)
	}
}

func TestDecodeTimestampInfinity(t *testing.T) {
	s, ok := decodeTimestamp(pgio.AppendInt64(nil, infinityMicrosecondOffset))
	require.True(t, ok)
	assert.Equal(t, "infinity", s)

	s, ok = decodeTimestamp(pgio.AppendInt64(nil, negativeInfinityMicrosecondOffset))
	require.True(t, ok)
	assert.Equal(t, "-infinity", s)
}

func TestDecodeTimestampWrongLength(t *testing.T) {
	for _, src := range [][]byte{nil, {1, 2, 3}, make([]byte, 9)} {
		_, ok := decodeTimestamp(src)
		assert.False(t, ok)
	}
}
