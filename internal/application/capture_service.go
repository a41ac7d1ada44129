package application

import (
	"context"
	"fmt"

	"github.com/bnema/obdlog/internal/ports"
)

// DefaultCaptureCommands identify the adapter, let it pick a protocol and
// then poll a handful of common mode 01 PIDs.
var DefaultCaptureCommands = []string{"ATI", "ATSP0", "0100", "0105", "010C", "010D", "010C"}

type CaptureService struct {
	service  *Service
	capturer ports.TranscriptCapturer
}

func NewCaptureService(service *Service, capturer ports.TranscriptCapturer) *CaptureService {
	return &CaptureService{service: service, capturer: capturer}
}

func (s *CaptureService) Capture(ctx context.Context, commands []string) (CaptureResult, error) {
	if len(commands) == 0 {
		commands = DefaultCaptureCommands
	}

	text, err := s.capturer.Capture(ctx, commands)
	if err != nil {
		return CaptureResult{}, fmt.Errorf("capture transcript: %w", err)
	}

	return CaptureResult{
		Transcript: text,
		Session:    s.service.parse(text),
	}, nil
}
