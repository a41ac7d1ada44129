// Package telnet records live sessions from ELM327 Wi-Fi adapters, which
// expose their serial console on a raw TCP/telnet port.
package telnet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/obdlog/internal/ports"
	"github.com/rs/zerolog"
	"github.com/ziutek/telnet"
)

const (
	prompt       = ">"
	resetCommand = "ATZ"
)

// ProgressFunc is told about each command just before it is sent. step
// counts from 1 and total includes the initial reset.
type ProgressFunc func(step, total int, command string)

type Option func(*Capturer)

// WithProgress reports every command the capturer sends.
func WithProgress(fn ProgressFunc) Option {
	return func(c *Capturer) {
		c.progress = fn
	}
}

type Capturer struct {
	address  string
	timeout  time.Duration
	logger   zerolog.Logger
	progress ProgressFunc
}

var _ ports.TranscriptCapturer = (*Capturer)(nil)

func NewCapturer(address string, timeout time.Duration, logger zerolog.Logger, opts ...Option) *Capturer {
	c := &Capturer{address: address, timeout: timeout, logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Capture resets the adapter, sends every command in order and returns the
// exchange in transcript form: a bare ATZ line, then each command prefixed
// with '>' followed by the adapter's answer.
func (c *Capturer) Capture(ctx context.Context, commands []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	conn, err := telnet.DialTimeout("tcp", c.address, c.timeout)
	if err != nil {
		return "", fmt.Errorf("dial adapter %s: %w", c.address, err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	commands = cleanCommands(commands)
	total := len(commands) + 1

	c.report(1, total, resetCommand)
	lines := []string{resetCommand}
	response, err := c.exchange(conn, resetCommand)
	if err != nil {
		return "", wrapCanceled(ctx, fmt.Errorf("reset adapter: %w", err))
	}
	lines = append(lines, response...)

	for i, command := range commands {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		c.report(i+2, total, command)

		response, err := c.exchange(conn, command)
		if err != nil {
			return "", wrapCanceled(ctx, fmt.Errorf("send %s: %w", command, err))
		}

		c.logger.Debug().Str("command", command).Strs("response", response).Msg("adapter exchange")
		lines = append(lines, prompt+command)
		lines = append(lines, response...)
	}

	return strings.Join(lines, "\n") + "\n", nil
}

func (c *Capturer) report(step, total int, command string) {
	if c.progress != nil {
		c.progress(step, total, command)
	}
}

// cleanCommands upper-cases commands and drops blank ones.
func cleanCommands(commands []string) []string {
	cleaned := make([]string, 0, len(commands))
	for _, command := range commands {
		command = strings.ToUpper(strings.TrimSpace(command))
		if command != "" {
			cleaned = append(cleaned, command)
		}
	}
	return cleaned
}

func (c *Capturer) exchange(conn *telnet.Conn, command string) ([]string, error) {
	if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		return nil, err
	}
	if _, err := conn.Write([]byte(command + "\r")); err != nil {
		return nil, err
	}

	data, err := conn.ReadUntil(prompt)
	if err != nil {
		return nil, err
	}

	return responseLines(string(data), command), nil
}

// responseLines splits raw adapter output into trimmed lines, dropping the
// prompt, blank lines and the echo of the command itself.
func responseLines(raw string, command string) []string {
	raw = strings.TrimSuffix(raw, prompt)
	fields := strings.FieldsFunc(raw, func(r rune) bool { return r == '\r' || r == '\n' })

	lines := make([]string, 0, len(fields))
	for _, field := range fields {
		line := strings.TrimSpace(field)
		if line == "" || strings.EqualFold(line, command) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func wrapCanceled(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}
