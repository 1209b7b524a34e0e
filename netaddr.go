package pgglance

import (
	"encoding/binary"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Network address family is dependent on server socket.h value for AF_INET.
// In practice, all platforms appear to have the same value. See
// src/include/utils/inet.h for more information.
const (
	defaultAFInet  = 2
	defaultAFInet6 = 3
)

// DecodeNetworkType routes src to the network address decoder named by oid.
// inet and cidr share one binary format and one decoder.
func DecodeNetworkType(src []byte, oid uint32) (string, error) {
	switch oid {
	case InetOID, CIDROID:
		return DecodeInet(src)
	case MacaddrOID:
		return DecodeMacaddr(src)
	case Macaddr8OID:
		return DecodeMacaddr8(src)
	}
	return "", fmt.Errorf("oid %d is not a network address type", oid)
}

// DecodeInet decodes the binary inet/cidr wire format:
// [family][prefix][is_cidr][addr_len][addr bytes]. The prefix is omitted
// from the rendering when the value is a bare host address: not flagged as
// cidr and with a prefix equal to the full host width.
func DecodeInet(src []byte) (string, error) {
	if len(src) < 4 {
		return "", fmt.Errorf("received an invalid size for an inet: %d", len(src))
	}

	family := src[0]
	bits := int(src[1])
	isCIDR := src[2] != 0
	addrLen := int(src[3])

	var hostBits int
	switch family {
	case defaultAFInet:
		if addrLen != net.IPv4len {
			return "", fmt.Errorf("received an invalid address length for an IPv4 inet: %d", addrLen)
		}
		hostBits = 32
	case defaultAFInet6:
		if addrLen != net.IPv6len {
			return "", fmt.Errorf("received an invalid address length for an IPv6 inet: %d", addrLen)
		}
		hostBits = 128
	default:
		return "", fmt.Errorf("received an invalid address family for an inet: %d", family)
	}

	if len(src) < 4+addrLen {
		return "", fmt.Errorf("received an invalid size for an inet: %d", len(src))
	}
	addr := src[4 : 4+addrLen]

	var s string
	if family == defaultAFInet {
		s = formatIPv4(addr)
	} else {
		s = formatIPv6(addr)
	}

	if !isCIDR && bits == hostBits {
		return s, nil
	}
	return s + "/" + strconv.Itoa(bits), nil
}

// DecodeMacaddr decodes the 6-byte binary macaddr wire format.
func DecodeMacaddr(src []byte) (string, error) {
	if len(src) != 6 {
		return "", fmt.Errorf("received an invalid size for a macaddr: %d", len(src))
	}
	return net.HardwareAddr(src).String(), nil
}

// DecodeMacaddr8 decodes the 8-byte binary macaddr8 wire format.
func DecodeMacaddr8(src []byte) (string, error) {
	if len(src) != 8 {
		return "", fmt.Errorf("received an invalid size for a macaddr8: %d", len(src))
	}
	return net.HardwareAddr(src).String(), nil
}

func formatIPv4(addr []byte) string {
	var b strings.Builder
	for i, octet := range addr {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(int(octet)))
	}
	return b.String()
}

// formatIPv6 renders addr as compressed colon-hex. The longest run of two
// or more consecutive zero groups is replaced by "::"; on ties the first
// run wins. net.IP.String is not used because it renders IPv4-mapped
// addresses in mixed notation rather than as hex groups.
func formatIPv6(addr []byte) string {
	var groups [8]uint16
	for i := range groups {
		groups[i] = binary.BigEndian.Uint16(addr[i*2:])
	}

	bestStart, bestLen := -1, 1
	runStart := -1
	for i := 0; i <= len(groups); i++ {
		if i < len(groups) && groups[i] == 0 {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		if runStart >= 0 {
			if l := i - runStart; l > bestLen {
				bestStart, bestLen = runStart, l
			}
			runStart = -1
		}
	}

	if bestStart < 0 {
		var b strings.Builder
		for i, g := range groups {
			if i > 0 {
				b.WriteByte(':')
			}
			b.WriteString(strconv.FormatUint(uint64(g), 16))
		}
		return b.String()
	}

	if bestLen == len(groups) {
		return "::"
	}

	var b strings.Builder
	for i := 0; i < bestStart; i++ {
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteString(strconv.FormatUint(uint64(groups[i]), 16))
	}
	b.WriteString("::")
	for i := bestStart + bestLen; i < len(groups); i++ {
		if i > bestStart+bestLen {
			b.WriteByte(':')
		}
		b.WriteString(strconv.FormatUint(uint64(groups[i]), 16))
	}
	return b.String()
}
