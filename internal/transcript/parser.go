// Package transcript reconstructs commands and PID request/response pairs
// from an ELM327 session log.
package transcript

import (
	"strings"

	"github.com/bnema/obdlog/internal/domain"
	"github.com/rs/zerolog"
)

const (
	resetCommand     = "ATZ"
	initializeMarker = "Initialize(initMode=Default)"
	protocolPrefix   = ">ATSP"
)

// suppressedCommands are setup commands every session sends; they are parsed
// but left out of Session.Commands.
var suppressedCommands = map[string]struct{}{
	"ATE0": {},
	"ATD0": {},
	"ATH1": {},
	"ATM0": {},
	"ATRV": {},
	"STI":  {},
	"ATS0": {},
}

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Parser holds the state of a single parse. Use a new Parser for every
// transcript; it is not safe for concurrent use.
type Parser struct {
	logger  zerolog.Logger
	lines   []string
	session domain.Session
}

func NewParser(logger zerolog.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse parses text with a throwaway Parser and no logging.
func Parse(text string) domain.Session {
	return NewParser(zerolog.Nop()).Parse(text)
}

// Parse reads everything after the last ATZ reset line. Lines it does not
// understand are skipped; it never fails.
func (p *Parser) Parse(text string) domain.Session {
	p.session = domain.NewSession()
	p.lines = window(strings.Split(lineBreaks.Replace(text), "\n"))

	requests := p.requestIndices()
	p.logger.Debug().
		Int("lines", len(p.lines)).
		Int("requests", len(requests)).
		Msg("transcript window")

	p.collectSecondToLast(requests)
	p.collectCommands()
	p.collectResponses(requests)

	p.logger.Debug().
		Str("protocol", p.session.LastProtocol).
		Int("commands", len(p.session.Commands)).
		Int("suppressed", len(p.session.Suppressed)).
		Int("pids", p.session.PIDResponses.Len()).
		Msg("transcript parsed")

	return p.session
}

// window trims every line and drops everything up to and including the
// last reset line.
func window(raw []string) []string {
	start := 0
	for i, line := range raw {
		if strings.EqualFold(strings.TrimSpace(line), resetCommand) {
			start = i + 1
		}
	}

	lines := make([]string, 0, len(raw)-start)
	for _, line := range raw[start:] {
		lines = append(lines, strings.TrimSpace(line))
	}
	return lines
}

// isCommand reports whether line is an AT, ST or VT command. A protocol
// selection command updates the session protocol as it is seen.
func (p *Parser) isCommand(line string) bool {
	upper := strings.ToUpper(line)

	if strings.HasPrefix(upper, protocolPrefix) {
		protocol := upper[len(protocolPrefix):]
		if protocol != p.session.LastProtocol {
			p.logger.Debug().Str("protocol", protocol).Msg("protocol selected")
		}
		p.session.LastProtocol = protocol
	}

	return strings.HasPrefix(upper, ">AT") ||
		strings.HasPrefix(upper, ">ST") ||
		strings.HasPrefix(upper, ">VT")
}

func (p *Parser) isPIDRequest(line string) bool {
	if !strings.HasPrefix(line, ">") || p.isCommand(line) {
		return false
	}

	return len(line) >= 3 && domain.IsHex(line[1:3])
}

// requestIndices lists the PID request lines that are directly followed by
// a hex response line.
func (p *Parser) requestIndices() []int {
	var indices []int
	for i := 0; i < len(p.lines)-1; i++ {
		if p.isPIDRequest(p.lines[i]) && domain.IsHex(p.lines[i+1]) {
			indices = append(indices, i)
		}
	}
	return indices
}

func (p *Parser) collectSecondToLast(requests []int) {
	if len(requests) < 2 {
		return
	}

	last := requests[len(requests)-1]
	prev := requests[len(requests)-2]

	response := []string{}
	for i := prev + 1; i < last; i++ {
		line := p.lines[i]
		if line != "" && !p.isCommand(line) {
			response = append(response, line)
		}
	}

	p.session.SecondToLastPID = &domain.PIDRecord{
		Request:  p.lines[prev][1:],
		Response: domain.StripHeaders(p.session.LastProtocol, response),
	}
}

func (p *Parser) collectCommands() {
	i := 0
	for i < len(p.lines) {
		line := p.lines[i]
		if !strings.HasPrefix(line, ">") || !p.isCommand(line) {
			i++
			continue
		}

		response := []string{}
		j := i + 1
		for ; j < len(p.lines); j++ {
			next := p.lines[j]
			if next == "" ||
				strings.HasPrefix(next, ">") ||
				strings.HasPrefix(next, "[") ||
				next == initializeMarker {
				break
			}
			response = append(response, next)
		}

		cmd := domain.ParsedCommand{Name: line[1:], Response: response}
		if _, ok := suppressedCommands[strings.ToUpper(cmd.Name)]; ok {
			p.session.Suppressed = append(p.session.Suppressed, cmd)
		} else {
			p.session.Commands = append(p.session.Commands, cmd)
		}

		i = j
	}
}

func (p *Parser) collectResponses(requests []int) {
	for n, current := range requests {
		next := len(p.lines)
		if n < len(requests)-1 {
			next = requests[n+1]
		}

		var response []string
		for j := current + 1; j < next; j++ {
			line := p.lines[j]
			if !strings.HasPrefix(line, ">") && domain.IsHex(line) {
				response = append(response, line)
			}
		}

		if len(response) > 0 {
			p.session.PIDResponses.Set(p.lines[current][1:], response)
		}
	}
}
