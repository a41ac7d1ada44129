package domain

// ParsedCommand is an AT/ST/VT command and the lines the adapter answered with.
type ParsedCommand struct {
	Name     string   `json:"command"`
	Response []string `json:"response"`
}

// PIDRecord pairs a request line (without the leading '>') with its response.
type PIDRecord struct {
	Request  string   `json:"request"`
	Response []string `json:"response"`
}

// Session is everything recovered from one transcript after the last reset.
type Session struct {
	LastProtocol    string          `json:"lastProtocol,omitempty"`
	Commands        []ParsedCommand `json:"commands"`
	Suppressed      []ParsedCommand `json:"suppressed,omitempty"`
	PIDResponses    *PIDResponses   `json:"pidResponses"`
	SecondToLastPID *PIDRecord      `json:"secondToLastPID"`
}

// NewSession returns an empty session with an initialized response map.
func NewSession() Session {
	return Session{
		Commands:     []ParsedCommand{},
		PIDResponses: NewPIDResponses(),
	}
}
