package pgglance

import (
	"encoding/binary"
	"math"
	"strconv"
)

func decodeFloat4(src []byte) (string, bool) {
	if len(src) != 4 {
		return "", false
	}
	n := math.Float32frombits(binary.BigEndian.Uint32(src))
	return strconv.FormatFloat(float64(n), 'f', -1, 32), true
}

func decodeFloat8(src []byte) (string, bool) {
	if len(src) != 8 {
		return "", false
	}
	n := math.Float64frombits(binary.BigEndian.Uint64(src))
	return strconv.FormatFloat(n, 'f', -1, 64), true
}
