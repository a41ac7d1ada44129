package domain

// StripHeaders removes the header prefix the given protocol puts in front of
// every response line. CAN 11-bit (6, 8) headers are 3 characters, CAN 29-bit
// (7, 9) headers are 8. Other protocols are returned unchanged.
func StripHeaders(protocol string, lines []string) []string {
	var width int
	switch protocol {
	case "6", "8":
		width = 3
	case "7", "9":
		width = 8
	default:
		return lines
	}

	stripped := make([]string, len(lines))
	for i, line := range lines {
		if len(line) > width {
			stripped[i] = line[width:]
		}
	}
	return stripped
}
