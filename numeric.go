package pgglance

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// PostgreSQL internal numeric storage uses 16-bit "digits" with base of 10,000
const nbase = 10000

const (
	pgNumericPosSign    = 0x0000
	pgNumericNegSign    = 0x4000
	pgNumericNaNSign    = 0xc000
	pgNumericPosInfSign = 0xd000
	pgNumericNegInfSign = 0xf000
)

var bigNBase = big.NewInt(nbase)

// DecodeNumeric decodes the binary numeric wire format for display. The
// rendering is display-only: values with more precision than the decimal
// library keeps are rounded, not preserved, which is acceptable for a
// result viewer.
func DecodeNumeric(src []byte) (string, error) {
	if len(src) < 8 {
		return "", fmt.Errorf("numeric incomplete %v", src)
	}

	rp := 0
	ndigits := binary.BigEndian.Uint16(src[rp:])
	rp += 2
	weight := int16(binary.BigEndian.Uint16(src[rp:]))
	rp += 2
	sign := binary.BigEndian.Uint16(src[rp:])
	rp += 2
	dscale := int16(binary.BigEndian.Uint16(src[rp:]))
	rp += 2

	switch sign {
	case pgNumericNaNSign:
		return "NaN", nil
	case pgNumericPosInfSign:
		return "Infinity", nil
	case pgNumericNegInfSign:
		return "-Infinity", nil
	case pgNumericPosSign, pgNumericNegSign:
	default:
		return "", fmt.Errorf("invalid numeric sign: %04x", sign)
	}

	if len(src) != rp+int(ndigits)*2 {
		return "", fmt.Errorf("numeric incomplete %v", src)
	}

	accum := &big.Int{}
	for i := 0; i < int(ndigits); i++ {
		digit := binary.BigEndian.Uint16(src[rp:])
		rp += 2
		if digit >= nbase {
			return "", fmt.Errorf("invalid numeric digit: %d", digit)
		}
		accum.Mul(accum, bigNBase)
		accum.Add(accum, big.NewInt(int64(digit)))
	}
	if sign == pgNumericNegSign {
		accum.Neg(accum)
	}

	exp := (int32(weight) - int32(ndigits) + 1) * 4
	d := decimal.NewFromBigInt(accum, exp)
	if dscale > 0 {
		return d.StringFixed(int32(dscale)), nil
	}
	return d.String(), nil
}
