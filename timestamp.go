package pgglance

import (
	"encoding/binary"
	"time"
)

const microsecFromUnixEpochToY2K = 946684800 * 1000000

const (
	infinityMicrosecondOffset         = 9223372036854775807
	negativeInfinityMicrosecondOffset = -9223372036854775808
)

// timestampDisplayFormat is the single canonical textual form for decoded
// instants: ISO-8601 with microsecond precision and an explicit UTC offset.
const timestampDisplayFormat = "2006-01-02T15:04:05.000000-07:00"

// decodeTimestamp accepts the 8-byte binary encoding, microseconds since
// 2000-01-01 00:00:00 UTC, and renders the canonical display form.
func decodeTimestamp(src []byte) (string, bool) {
	if len(src) != 8 {
		return "", false
	}

	microsecSinceY2K := int64(binary.BigEndian.Uint64(src))
	switch microsecSinceY2K {
	case infinityMicrosecondOffset:
		return "infinity", true
	case negativeInfinityMicrosecondOffset:
		return "-infinity", true
	}

	t := time.Unix(
		microsecFromUnixEpochToY2K/1000000+microsecSinceY2K/1000000,
		(microsecFromUnixEpochToY2K%1000000*1000)+(microsecSinceY2K%1000000*1000),
	)
	return formatTimestamp(t), true
}

// formatTimestamp renders t in the canonical display form, normalized to
// UTC.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampDisplayFormat)
}
