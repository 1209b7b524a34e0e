package pgglance_test

import (
	"testing"

	"github.com/pgglance/pgglance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInetHostAddressOmitsPrefix(t *testing.T) {
	s, err := pgglance.DecodeInet([]byte{2, 32, 0, 4, 10, 0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", s)
}

func TestDecodeInetSubnetRetained(t *testing.T) {
	s, err := pgglance.DecodeInet([]byte{2, 24, 0, 4, 192, 168, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.1/24", s)
}

func TestDecodeInetCIDRKeepsHostWidthPrefix(t *testing.T) {
	s, err := pgglance.DecodeInet([]byte{2, 32, 1, 4, 192, 168, 1, 7})
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.7/32", s)

	s, err = pgglance.DecodeInet([]byte{2, 24, 1, 4, 192, 168, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.0/24", s)
}

func TestDecodeInetZeroPrefix(t *testing.T) {
	s, err := pgglance.DecodeInet([]byte{2, 0, 0, 4, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0/0", s)
}

func TestDecodeInetMalformed(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
	}{
		{"empty", nil},
		{"short header", []byte{2, 32}},
		{"length mismatch", append([]byte{2, 32, 0, 16}, make([]byte, 16)...)},
		{"bad family", []byte{7, 32, 0, 4, 10, 0, 0, 1}},
		{"truncated address", []byte{2, 32, 0, 4, 10, 0}},
	}
	for _, tt := range tests {
		_, err := pgglance.DecodeInet(tt.src)
		assert.Errorf(t, err, "%s", tt.name)
	}
}

func TestDecodeInetIPv6Compression(t *testing.T) {
	prefix := []byte{3, 128, 0, 16}

	tests := []struct {
		name string
		addr []byte
		want string
	}{
		{
			"all zero",
			make([]byte, 16),
			"::",
		},
		{
			"loopback",
			[]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
			"::1",
		},
		{
			"leading groups",
			[]byte{0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
			"2001:db8::1",
		},
		{
			"tie goes to first run",
			[]byte{0, 1, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 3, 0, 4},
			"1::2:0:0:3:4",
		},
		{
			"single zero group not compressed",
			[]byte{0, 1, 0, 2, 0, 3, 0, 0, 0, 5, 0, 6, 0, 7, 0, 8},
			"1:2:3:0:5:6:7:8",
		},
		{
			"no zero groups",
			[]byte{0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1},
			"1:1:1:1:1:1:1:1",
		},
		{
			"trailing run",
			[]byte{0x20, 0x01, 0x0d, 0xb8, 0, 1, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0},
			"2001:db8:1:2::",
		},
	}
	for _, tt := range tests {
		s, err := pgglance.DecodeInet(append(prefix, tt.addr...))
		require.NoErrorf(t, err, "%s", tt.name)
		assert.Equalf(t, tt.want, s, "%s", tt.name)
	}
}

func TestDecodeInetIPv6Subnet(t *testing.T) {
	src := append([]byte{3, 64, 1, 16}, []byte{0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}...)
	s, err := pgglance.DecodeInet(src)
	require.NoError(t, err)
	assert.Equal(t, "2001:db8::/64", s)
}

func TestDecodeMacaddr(t *testing.T) {
	s, err := pgglance.DecodeMacaddr([]byte{0x08, 0x00, 0x2b, 0x01, 0x02, 0x03})
	require.NoError(t, err)
	assert.Equal(t, "08:00:2b:01:02:03", s)

	_, err = pgglance.DecodeMacaddr([]byte{0x01, 0x02})
	assert.Error(t, err)

	_, err = pgglance.DecodeMacaddr(nil)
	assert.Error(t, err)
}

func TestDecodeMacaddr8(t *testing.T) {
	s, err := pgglance.DecodeMacaddr8([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	assert.Equal(t, "01:02:03:04:05:06:07:08", s)

	_, err = pgglance.DecodeMacaddr8([]byte{1, 2, 3, 4, 5, 6})
	assert.Error(t, err)
}

func TestDecodeNetworkType(t *testing.T) {
	s, err := pgglance.DecodeNetworkType([]byte{2, 32, 0, 4, 10, 0, 0, 1}, pgglance.InetOID)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", s)

	s, err = pgglance.DecodeNetworkType([]byte{2, 24, 1, 4, 10, 1, 2, 0}, pgglance.CIDROID)
	require.NoError(t, err)
	assert.Equal(t, "10.1.2.0/24", s)

	s, err = pgglance.DecodeNetworkType([]byte{1, 2, 3, 4, 5, 6, 7, 8}, pgglance.Macaddr8OID)
	require.NoError(t, err)
	assert.Equal(t, "01:02:03:04:05:06:07:08", s)

	_, err = pgglance.DecodeNetworkType([]byte{1}, pgglance.TextOID)
	assert.Error(t, err)
}
