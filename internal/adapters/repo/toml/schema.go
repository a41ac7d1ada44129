package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Formulas []formulaSchema `toml:"formulas"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported formulas schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type formulaSchema struct {
	Name        string  `toml:"name"`
	Expression  string  `toml:"expression"`
	PID         string  `toml:"pid,omitempty"`
	Variable    float64 `toml:"variable,omitempty"`
	Unit        string  `toml:"unit,omitempty"`
	Description string  `toml:"description,omitempty"`
}
