package expr

// maxRangeWidth is the largest end-start a range may span; eight bytes fill
// a 64-bit accumulator.
const maxRangeWidth = 7

func (e *evaluator) track(index int) {
	if _, ok := e.seen[index]; ok {
		return
	}
	e.seen[index] = struct{}{}
	e.accessed = append(e.accessed, index)
}

func (e *evaluator) readByte(tok Token) (float64, error) {
	if tok.index >= len(e.buf) {
		return 0, newError(ErrIndexOutOfBounds, tok.pos, "byte %d of %d", tok.index, len(e.buf))
	}
	e.track(tok.index)

	v := int(e.buf[tok.index])
	if tok.kind == Signed {
		v = int(int8(e.buf[tok.index]))
	}
	if tok.bit >= 0 {
		v = (v >> tok.bit) & 1
	}

	return float64(v), nil
}

// readRange accumulates bytes start..end big-endian. In a signed range
// every byte is read as int8 before it is shifted into place, then the sum
// is narrowed to 8, 16 or 32 bits for widths of one, two and up to four
// bytes. Wider signed ranges keep the full 64-bit sum.
func (e *evaluator) readRange(tok Token) (float64, error) {
	width := tok.end - tok.index
	if width < 0 || width > maxRangeWidth {
		return 0, newError(ErrRangeTooLarge, tok.pos, "%s spans %d bytes, at most %d allowed", tok, width+1, maxRangeWidth+1)
	}
	if tok.end >= len(e.buf) {
		return 0, newError(ErrIndexOutOfBounds, tok.pos, "byte %d of %d", tok.end, len(e.buf))
	}

	if tok.kind != Signed {
		var sum uint64
		for j := tok.index; j <= tok.end; j++ {
			e.track(j)
			sum |= uint64(e.buf[j]) << (8 * uint(tok.end-j))
		}
		return float64(sum), nil
	}

	var sum int64
	for j := tok.index; j <= tok.end; j++ {
		e.track(j)
		sum |= int64(int8(e.buf[j])) << (8 * uint(tok.end-j))
	}

	switch {
	case width == 0:
		return float64(int8(sum)), nil
	case width == 1:
		return float64(int16(sum)), nil
	case width <= 3:
		return float64(int32(sum)), nil
	default:
		return float64(sum), nil
	}
}
