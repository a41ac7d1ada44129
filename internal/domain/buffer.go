package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ByteBuffer is the decoded payload an expression is evaluated against.
type ByteBuffer []byte

func (b ByteBuffer) Len() int {
	return len(b)
}

// Hex renders every byte as two uppercase hex digits.
func (b ByteBuffer) Hex() []string {
	cells := make([]string, len(b))
	for i, v := range b {
		cells[i] = fmt.Sprintf("%02X", v)
	}
	return cells
}

// DecodeHexLines concatenates response lines into one buffer. Each line is
// read two characters at a time; an odd trailing character is decoded as a
// single nibble. Spaces inside a line are ignored and lines that are not hex
// at all are skipped.
func DecodeHexLines(lines []string) ByteBuffer {
	buf := make(ByteBuffer, 0, 8*len(lines))
	for _, line := range lines {
		compact := strings.Join(strings.Fields(line), "")
		if !IsHex(compact) {
			continue
		}

		for i := 0; i < len(compact); i += 2 {
			end := min(i+2, len(compact))
			v, err := strconv.ParseUint(compact[i:end], 16, 8)
			if err != nil {
				continue
			}
			buf = append(buf, byte(v))
		}
	}

	return buf
}

// IsHex reports whether s is non-empty and made only of hex digits.
func IsHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
