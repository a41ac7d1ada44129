package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/obdlog/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, formulasPath string) *Repository {
	t.Helper()

	config := viper.New()
	config.Set(FormulasPathKey, formulasPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "formulas.toml"))

	rpm := domain.Formula{
		Name:        "rpm",
		Expression:  "([B0:B1]) / 4",
		PID:         "010C",
		Unit:        "rpm",
		Description: "Engine speed",
	}
	coolant := domain.Formula{
		Name:       "coolant",
		Expression: "B0 - 40",
		PID:        "0105",
		Unit:       "C",
	}

	require.NoError(t, repo.Save(context.Background(), rpm))
	require.NoError(t, repo.Save(context.Background(), coolant))

	got, err := repo.GetByName(context.Background(), rpm.Name)
	require.NoError(t, err)
	assert.Equal(t, rpm, got)

	formulas, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Formula{coolant, rpm}, formulas)
}

func TestRepositorySaveReplacesFormulaWithSameName(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "formulas.toml"))

	require.NoError(t, repo.Save(context.Background(), domain.Formula{Name: "load", Expression: "B0"}))
	require.NoError(t, repo.Save(context.Background(), domain.Formula{Name: "load", Expression: "B0 * 100 / 255", Variable: 2}))

	formulas, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, formulas, 1)
	assert.Equal(t, "B0 * 100 / 255", formulas[0].Expression)
	assert.Equal(t, 2.0, formulas[0].Variable)
}

func TestRepositoryDelete(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "formulas.toml"))

	require.NoError(t, repo.Save(context.Background(), domain.Formula{Name: "a", Expression: "B0"}))
	require.NoError(t, repo.Save(context.Background(), domain.Formula{Name: "b", Expression: "B1"}))

	require.NoError(t, repo.Delete(context.Background(), "a"))

	formulas, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, formulas, 1)
	assert.Equal(t, "b", formulas[0].Name)

	err = repo.Delete(context.Background(), "a")
	require.ErrorIs(t, err, domain.ErrFormulaNotFound)
}

func TestRepositoryReadsHandWrittenFile(t *testing.T) {
	t.Parallel()

	formulasPath := filepath.Join(t.TempDir(), "formulas.toml")
	require.NoError(t, os.WriteFile(formulasPath, []byte(strings.Join([]string{
		"version = 1",
		"",
		"[[formulas]]",
		"name = \"speed\"",
		"expression = \"B0\"",
		"pid = \"010D\"",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, formulasPath)

	formula, err := repo.GetByName(context.Background(), "speed")
	require.NoError(t, err)
	assert.Equal(t, domain.Formula{Name: "speed", Expression: "B0", PID: "010D"}, formula)
}

func TestRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), domain.Formula{Name: "rpm", Expression: "[B0:B1] / 4"}))

	formulasPath := filepath.Join(homeDir, ".obdlog", "formulas.toml")
	assert.Equal(t, formulasPath, repo.Path())

	info, err := os.Stat(formulasPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "formulas.toml"))

	formulas, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, formulas)

	_, err = repo.GetByName(context.Background(), "rpm")
	require.ErrorIs(t, err, domain.ErrFormulaNotFound)
}

func TestRepositoryListMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	formulasPath := filepath.Join(t.TempDir(), "formulas.toml")
	require.NoError(t, os.WriteFile(formulasPath, []byte("formulas = ["), 0o600))

	repo := newTestRepository(t, formulasPath)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode formulas file")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "formulas.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, domain.Formula{Name: "rpm", Expression: "B0"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositoryConcurrentSavesAcrossInstancesPreserveBothFormulas(t *testing.T) {
	t.Parallel()

	formulasPath := filepath.Join(t.TempDir(), "formulas.toml")
	repoA := newTestRepository(t, formulasPath)
	repoB := newTestRepository(t, formulasPath)

	const perRepoWrites = 100
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repoA.Save(context.Background(), domain.Formula{Name: "a-" + strconv.Itoa(i), Expression: "B0"})
		}
	}()

	go func() {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repoB.Save(context.Background(), domain.Formula{Name: "b-" + strconv.Itoa(i), Expression: "B1"})
		}
	}()

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	formulas, err := repoA.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, formulas, perRepoWrites*2)
}

func TestRepositorySaveSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	formulasPath := filepath.Join(t.TempDir(), "formulas.toml")
	repo := newTestRepository(t, formulasPath)

	require.NoError(t, repo.Save(context.Background(), domain.Formula{Name: "rpm", Expression: "B0"}))

	data, err := os.ReadFile(formulasPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	formulasPath := filepath.Join(t.TempDir(), "formulas.toml")
	require.NoError(t, os.WriteFile(formulasPath, []byte(strings.Join([]string{
		"version = 999",
		"",
		"formulas = []",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, formulasPath)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported formulas schema version")
}
