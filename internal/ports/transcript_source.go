package ports

import "context"

// TranscriptSource supplies the full text of a session log.
type TranscriptSource interface {
	Read(ctx context.Context, location string) (string, error)
}

// TranscriptCapturer records a live session by sending commands to an
// adapter and returns the resulting transcript text.
type TranscriptCapturer interface {
	Capture(ctx context.Context, commands []string) (string, error)
}
