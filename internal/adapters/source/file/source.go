package file

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bnema/obdlog/internal/domain"
	"github.com/bnema/obdlog/internal/ports"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// maxTranscriptSize bounds how much of a log is read into memory.
const maxTranscriptSize = 64 << 20

// Source reads transcripts from the local filesystem. UTF-16 logs with a
// byte order mark are converted; anything else must be valid UTF-8.
type Source struct{}

var _ ports.TranscriptSource = Source{}

func NewSource() Source {
	return Source{}
}

func (Source) Read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", domain.ErrFileRead, path, err)
	}
	defer f.Close()

	decoder := unicode.BOMOverride(encoding.UTF8Validator)
	data, err := io.ReadAll(io.LimitReader(transform.NewReader(f, decoder), maxTranscriptSize+1))
	if err != nil {
		return "", fmt.Errorf("%w %s: decode: %w", domain.ErrFileRead, path, err)
	}
	if len(data) > maxTranscriptSize {
		return "", fmt.Errorf("%w %s: larger than %d bytes", domain.ErrFileRead, path, maxTranscriptSize)
	}

	return string(data), nil
}
