package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bnema/obdlog/internal/domain"
	"github.com/bnema/obdlog/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	FormulasPathKey = "formulas.path"

	formulasFileMode  = 0o600
	formulasDirMode   = 0o700
	formulasConfigDir = ".obdlog"
	formulasFile      = "formulas.toml"
	tempFilePattern   = ".formulas-*.toml.tmp"
)

// Repository stores formulas in a single TOML file. Writes go through a
// temp file and rename so readers never see a partial file.
type Repository struct {
	formulasPath string
	mu           *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.FormulaRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(FormulasPathKey, filepath.Join(homeDir, formulasConfigDir, formulasFile))

	formulasPath := cfg.GetString(FormulasPathKey)
	if formulasPath == "" {
		return nil, errors.New("formulas path is empty")
	}
	formulasPath, err = normalizePath(formulasPath)
	if err != nil {
		return nil, err
	}

	return &Repository{formulasPath: formulasPath, mu: lockForPath(formulasPath)}, nil
}

func (r *Repository) Path() string {
	return r.formulasPath
}

func (r *Repository) Save(ctx context.Context, formula domain.Formula) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(formula)
	updated := false
	for i := range file.Formulas {
		if file.Formulas[i].Name == encoded.Name {
			file.Formulas[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Formulas = append(file.Formulas, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := file.Formulas[:0]
	found := false
	for _, entry := range file.Formulas {
		if entry.Name == name {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return fmt.Errorf("%w: %q", domain.ErrFormulaNotFound, name)
	}
	file.Formulas = kept

	return r.writeSchema(file)
}

func (r *Repository) GetByName(ctx context.Context, name string) (domain.Formula, error) {
	if err := ctx.Err(); err != nil {
		return domain.Formula{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Formula{}, err
	}

	for _, entry := range file.Formulas {
		if entry.Name == name {
			return fromSchema(entry), nil
		}
	}

	return domain.Formula{}, fmt.Errorf("%w: %q", domain.ErrFormulaNotFound, name)
}

// List returns the saved formulas sorted by name.
func (r *Repository) List(ctx context.Context) ([]domain.Formula, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	formulas := make([]domain.Formula, 0, len(file.Formulas))
	for _, entry := range file.Formulas {
		formulas = append(formulas, fromSchema(entry))
	}
	sort.Slice(formulas, func(i, j int) bool { return formulas[i].Name < formulas[j].Name })

	return formulas, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.formulasPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read formulas file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode formulas file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.formulasPath), formulasDirMode); err != nil {
		return fmt.Errorf("create formulas directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode formulas file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.formulasPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp formulas file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp formulas file: %w", err)
	}

	if err := tempFile.Chmod(formulasFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp formulas file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp formulas file: %w", err)
	}

	if err := os.Rename(tempName, r.formulasPath); err != nil {
		return fmt.Errorf("replace formulas file: %w", err)
	}
	cleanup = false

	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve formulas path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(formula domain.Formula) formulaSchema {
	return formulaSchema{
		Name:        formula.Name,
		Expression:  formula.Expression,
		PID:         formula.PID,
		Variable:    formula.Variable,
		Unit:        formula.Unit,
		Description: formula.Description,
	}
}

func fromSchema(entry formulaSchema) domain.Formula {
	return domain.Formula{
		Name:        entry.Name,
		Expression:  entry.Expression,
		PID:         entry.PID,
		Variable:    entry.Variable,
		Unit:        entry.Unit,
		Description: entry.Description,
	}
}
