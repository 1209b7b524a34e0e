package pgglance

import (
	"encoding/binary"
)

// Information on the internals of PostgreSQL arrays can be found in
// src/include/utils/array.h and src/backend/utils/adt/arrayfuncs.c. Of
// particular interest is the array_send function.

type arrayHeader struct {
	containsNull bool
	elementOID   uint32
	length       int
}

// arrayElement pairs a supported element OID with its decoder. quoted marks
// element kinds that are wrapped in double quotes when rendered.
type arrayElement struct {
	oid    uint32
	quoted bool
	decode func([]byte) (string, bool)
}

// arrayElements lists the element types array probing recognizes, in the
// order they are tried: text before the numeric widths, then bool, uuid,
// and timestamp.
var arrayElements = []arrayElement{
	{TextOID, true, decodeText},
	{VarcharOID, true, decodeText},
	{Int2OID, false, decodeInt2},
	{Int4OID, false, decodeInt4},
	{Int8OID, false, decodeInt8},
	{Float4OID, false, decodeFloat4},
	{Float8OID, false, decodeFloat8},
	{BoolOID, false, decodeBool},
	{UUIDOID, false, decodeUUID},
	{TimestampOID, false, decodeTimestamp},
	{TimestamptzOID, false, decodeTimestamp},
}

func arrayElementByOID(oid uint32) (arrayElement, bool) {
	for _, e := range arrayElements {
		if e.oid == oid {
			return e, true
		}
	}
	return arrayElement{}, false
}

// decodeArrayHeader parses and validates the fixed 12-byte binary array
// header plus dimension entries. Only zero- and one-dimensional arrays are
// accepted; anything else is assumed to not be an array at all, since array
// probing runs without type metadata and must reject opaque binary that
// merely resembles an array.
func decodeArrayHeader(src []byte) (arrayHeader, int, bool) {
	if len(src) < 12 {
		return arrayHeader{}, 0, false
	}
	rp := 0

	numDims := int(int32(binary.BigEndian.Uint32(src[rp:])))
	rp += 4
	if numDims < 0 || numDims > 1 {
		return arrayHeader{}, 0, false
	}

	containsNull := int32(binary.BigEndian.Uint32(src[rp:]))
	rp += 4
	if containsNull != 0 && containsNull != 1 {
		return arrayHeader{}, 0, false
	}

	elementOID := binary.BigEndian.Uint32(src[rp:])
	rp += 4

	length := 0
	if numDims == 1 {
		if len(src) < rp+8 {
			return arrayHeader{}, 0, false
		}
		length = int(int32(binary.BigEndian.Uint32(src[rp:])))
		rp += 4
		// lower bound; value is irrelevant for display
		rp += 4
		if length < 0 || length > (len(src)-rp)/4 {
			return arrayHeader{}, 0, false
		}
	}

	return arrayHeader{
		containsNull: containsNull == 1,
		elementOID:   elementOID,
		length:       length,
	}, rp, true
}

// decodeArray accepts a binary one-dimensional array of a supported element
// type and renders it as "[e1, e2, ...]" with string elements quoted. The
// whole buffer must be consumed exactly; any structural inconsistency
// rejects the buffer so it can fall through to the opaque binary paths.
func decodeArray(src []byte) (string, bool) {
	header, rp, ok := decodeArrayHeader(src)
	if !ok {
		return "", false
	}

	elemType, ok := arrayElementByOID(header.elementOID)
	if !ok {
		return "", false
	}

	elems := make([]string, 0, header.length)
	for i := 0; i < header.length; i++ {
		if len(src) < rp+4 {
			return "", false
		}
		elemLen := int(int32(binary.BigEndian.Uint32(src[rp:])))
		rp += 4

		if elemLen == -1 {
			if !header.containsNull {
				return "", false
			}
			elems = append(elems, "NULL")
			continue
		}
		if elemLen < 0 || len(src) < rp+elemLen {
			return "", false
		}

		s, ok := elemType.decode(src[rp : rp+elemLen])
		if !ok {
			return "", false
		}
		rp += elemLen

		if elemType.quoted {
			s = quoteArrayElement(s)
		}
		elems = append(elems, s)
	}

	if rp != len(src) {
		return "", false
	}
	return formatArray(elems), true
}
