package uritemplate

import (
	"fmt"
	"strings"
)

// EncodingMode selects which characters of a bound value are percent-encoded.
type EncodingMode int

const (
	// EncodeNone substitutes values unchanged.
	EncodeNone EncodingMode = iota

	// EncodeUnreserved encodes everything except ALPHA, DIGIT and "-._~",
	// as RFC 6570 simple string expansion does.
	EncodeUnreserved

	// EncodeReserved additionally keeps RFC 3986 reserved characters and
	// existing %XX triplets, as RFC 6570 reserved expansion does.
	EncodeReserved
)

const upperhex = "0123456789ABCDEF"

// reservedChars are the RFC 3986 gen-delims and sub-delims.
const reservedChars = ":/?#[]@!$&'()*+,;="

// String returns the configuration name of the mode.
func (m EncodingMode) String() string {
	switch m {
	case EncodeNone:
		return "none"
	case EncodeUnreserved:
		return "unreserved"
	case EncodeReserved:
		return "reserved"
	default:
		return fmt.Sprintf("EncodingMode(%d)", int(m))
	}
}

// ParseEncodingMode maps a configuration name to an EncodingMode.
// The empty string selects EncodeNone.
func ParseEncodingMode(s string) (EncodingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return EncodeNone, nil
	case "unreserved":
		return EncodeUnreserved, nil
	case "reserved":
		return EncodeReserved, nil
	}
	return EncodeNone, fmt.Errorf("unknown encoding mode %q", s)
}

// Encode percent-encodes s according to mode. Bytes are encoded
// individually, so multi-byte UTF-8 characters become several %XX triplets.
func Encode(s string, mode EncodingMode) string {
	if mode == EncodeNone || !needsEncoding(s, mode) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isUnreserved(c):
			b.WriteByte(c)
		case mode == EncodeReserved && isReserved(c):
			b.WriteByte(c)
		case mode == EncodeReserved && isPctTriplet(s, i):
			b.WriteString(s[i : i+3])
			i += 2
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0x0F])
		}
	}
	return b.String()
}

func needsEncoding(s string, mode EncodingMode) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			continue
		}
		if mode == EncodeReserved && (isReserved(c) || isPctTriplet(s, i)) {
			continue
		}
		return true
	}
	return false
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-' || c == '.' || c == '_' || c == '~':
		return true
	}
	return false
}

func isReserved(c byte) bool {
	return strings.IndexByte(reservedChars, c) >= 0
}

func isPctTriplet(s string, i int) bool {
	return s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2])
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
