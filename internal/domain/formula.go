package domain

import (
	"fmt"
	"strings"
)

// Formula is a named expression saved for reuse across transcripts.
type Formula struct {
	Name        string  `json:"name"`
	Expression  string  `json:"expression"`
	PID         string  `json:"pid,omitempty"`
	Variable    float64 `json:"variable,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	Description string  `json:"description,omitempty"`
}

func (f Formula) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.ContainsAny(f.Name, " \t\r\n") {
		return fmt.Errorf("name %q must not contain whitespace", f.Name)
	}
	if strings.TrimSpace(f.Expression) == "" {
		return fmt.Errorf("expression is required")
	}
	if f.PID != "" && !IsHex(f.PID) {
		return fmt.Errorf("pid %q is not hexadecimal", f.PID)
	}

	return nil
}

// Normalize trims every text field. The PID keeps its case; lookups fold it.
func (f *Formula) Normalize() {
	if f == nil {
		return
	}

	f.Name = strings.TrimSpace(f.Name)
	f.Expression = strings.TrimSpace(f.Expression)
	f.PID = strings.TrimSpace(f.PID)
	f.Unit = strings.TrimSpace(f.Unit)
	f.Description = strings.TrimSpace(f.Description)
}
