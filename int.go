package pgglance

import (
	"encoding/binary"
	"strconv"
)

// Integer probes accept only the exact binary width of their type. They are
// tried narrowest to widest so a short buffer is never padded into a wider
// interpretation.

func decodeInt2(src []byte) (string, bool) {
	if len(src) != 2 {
		return "", false
	}
	n := int16(binary.BigEndian.Uint16(src))
	return strconv.FormatInt(int64(n), 10), true
}

func decodeInt4(src []byte) (string, bool) {
	if len(src) != 4 {
		return "", false
	}
	n := int32(binary.BigEndian.Uint32(src))
	return strconv.FormatInt(int64(n), 10), true
}

func decodeInt8(src []byte) (string, bool) {
	if len(src) != 8 {
		return "", false
	}
	n := int64(binary.BigEndian.Uint64(src))
	return strconv.FormatInt(n, 10), true
}

// decodeInt is the platform-native width attempt. On 64-bit platforms it is
// shadowed by decodeInt8 in the probe order; it remains a distinct entry so
// the order reads the same on every platform.
func decodeInt(src []byte) (string, bool) {
	if len(src) != strconv.IntSize/8 {
		return "", false
	}
	switch strconv.IntSize {
	case 32:
		return decodeInt4(src)
	default:
		return decodeInt8(src)
	}
}
