package application

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/obdlog/internal/domain"
	"github.com/bnema/obdlog/internal/expr"
	"github.com/bnema/obdlog/internal/ports"
	"github.com/bnema/obdlog/internal/transcript"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/rs/zerolog"
)

type Service struct {
	source ports.TranscriptSource
	logger zerolog.Logger
}

func NewService(source ports.TranscriptSource, logger zerolog.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// Analyze reads the transcript at path and parses it into a session.
func (s *Service) Analyze(ctx context.Context, path string) (domain.Session, error) {
	text, err := s.source.Read(ctx, path)
	if err != nil {
		return domain.Session{}, fmt.Errorf("read transcript: %w", err)
	}

	session := s.parse(text)
	s.logger.Debug().
		Str("path", path).
		Int("commands", len(session.Commands)).
		Int("pids", session.PIDResponses.Len()).
		Msg("transcript analyzed")

	return session, nil
}

func (s *Service) parse(text string) domain.Session {
	return transcript.NewParser(s.logger).Parse(text)
}

// Evaluate runs the expression against the second-to-last PID response of
// the transcript, or against cmd.PID when it is set.
func (s *Service) Evaluate(ctx context.Context, cmd EvaluateCommand) (Evaluation, error) {
	if strings.TrimSpace(cmd.Expression) == "" {
		return Evaluation{}, domain.ErrEmptyExpression
	}

	session, err := s.Analyze(ctx, cmd.Path)
	if err != nil {
		return Evaluation{}, err
	}

	return s.evaluateSession(session, cmd.PID, cmd.Expression, cmd.Variable)
}

func (s *Service) evaluateSession(session domain.Session, pid, expression string, variable float64) (Evaluation, error) {
	if strings.TrimSpace(expression) == "" {
		return Evaluation{}, domain.ErrEmptyExpression
	}

	record, err := selectRecord(session, pid)
	if err != nil {
		return Evaluation{}, err
	}

	buffer := domain.DecodeHexLines(record.Response)
	if buffer.Len() == 0 {
		return Evaluation{}, fmt.Errorf("%w: %s", domain.ErrNoPIDData, record.Request)
	}

	result, err := expr.Evaluate(expression, buffer, variable)
	if err != nil {
		return Evaluation{}, fmt.Errorf("evaluate %q: %w", expression, err)
	}

	s.logger.Debug().
		Str("pid", record.Request).
		Str("expression", expression).
		Float64("result", result.Value).
		Ints("accessed", result.Accessed).
		Msg("expression evaluated")

	return Evaluation{
		PID:        record.Request,
		Response:   record.Response,
		Buffer:     buffer,
		Expression: expression,
		Variable:   variable,
		Result:     result,
	}, nil
}

func selectRecord(session domain.Session, pid string) (domain.PIDRecord, error) {
	pid = strings.TrimSpace(pid)
	if pid == "" {
		if session.SecondToLastPID == nil || len(session.SecondToLastPID.Response) == 0 {
			return domain.PIDRecord{}, domain.ErrNoPIDData
		}
		return *session.SecondToLastPID, nil
	}

	record, ok := session.PIDResponses.Lookup(pid)
	if !ok {
		if suggestion := closestPID(pid, session.PIDResponses.Keys()); suggestion != "" {
			return domain.PIDRecord{}, fmt.Errorf("%w: %q (did you mean %q?)", domain.ErrPIDNotFound, pid, suggestion)
		}
		return domain.PIDRecord{}, fmt.Errorf("%w: %q", domain.ErrPIDNotFound, pid)
	}

	return record, nil
}

func closestPID(target string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}

	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)

	return ranks[0].Target
}
