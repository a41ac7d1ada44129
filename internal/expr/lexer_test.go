package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, input string) []string {
	t.Helper()

	l := newLexer(input)
	var out []string
	for {
		tok, err := l.next()
		require.NoError(t, err)
		if tok.typ == tokenNone {
			return out
		}
		out = append(out, tok.String())
	}
}

func TestLexerTokens(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{input: "1+2", want: []string{"1", "+", "2"}},
		{input: "  V\t*  0.5 ", want: []string{"V", "*", "0.5"}},
		{input: "B12:3|S0", want: []string{"B12:3", "|", "S0"}},
		{input: "[S2:B3]>>4", want: []string{"[S2:S3]", ">>", "4"}},
		{input: "(B0<<8)^B1", want: []string{"(", "B0", "<<", "8", ")", "^", "B1"}},
		{input: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, lexAll(t, tt.input))
		})
	}
}

func TestLexerRecordsPositions(t *testing.T) {
	l := newLexer("B0 + [B1:B2]")

	var positions []int
	for {
		tok, err := l.next()
		require.NoError(t, err)
		if tok.typ == tokenNone {
			break
		}
		positions = append(positions, tok.pos)
	}

	assert.Equal(t, []int{0, 3, 5}, positions)
}

func TestLexerStopsAtFirstError(t *testing.T) {
	l := newLexer("B0 ? B1")

	tok, err := l.next()
	require.NoError(t, err)
	assert.Equal(t, "B0", tok.String())

	_, err = l.next()
	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, ErrTokenize, lexErr.Kind)
	assert.Equal(t, 3, lexErr.Pos)
}
