package domain

import "time"

type SessionID string

// ArchivedSession is a parsed transcript as stored in the archive.
type ArchivedSession struct {
	ID         SessionID
	Source     string
	Protocol   string
	IngestedAt time.Time
	Commands   []ParsedCommand
	Responses  []PIDRecord
}

// ArchivedResponse is one request/response pair read back from the archive.
type ArchivedResponse struct {
	SessionID  SessionID `json:"sessionId"`
	Source     string    `json:"source"`
	Protocol   string    `json:"protocol,omitempty"`
	Request    string    `json:"request"`
	Response   []string  `json:"response"`
	IngestedAt time.Time `json:"ingestedAt"`
}
