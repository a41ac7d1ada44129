package yaml

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/obdlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePack(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o600))
	return path
}

func TestLoaderLoad(t *testing.T) {
	t.Parallel()

	path := writePack(t,
		"name: generic-obd2",
		"vehicle: any",
		"formulas:",
		"  - name: rpm",
		"    expression: \"[B0:B1] / 4\"",
		"    pid: 010c",
		"    unit: rpm",
		"  - name: coolant",
		"    expression: B0 - 40",
		"    pid: \"0105\"",
		"    unit: C",
		"    description: Engine coolant temperature",
		"",
	)

	formulas, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []domain.Formula{
		{Name: "rpm", Expression: "[B0:B1] / 4", PID: "010c", Unit: "rpm"},
		{Name: "coolant", Expression: "B0 - 40", PID: "0105", Unit: "C", Description: "Engine coolant temperature"},
	}, formulas)
}

func TestLoaderLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		lines   []string
		wantErr string
	}{
		{
			name:    "empty document",
			lines:   []string{""},
			wantErr: "empty document",
		},
		{
			name:    "unknown key",
			lines:   []string{"formulas:", "  - name: rpm", "    expresion: B0"},
			wantErr: "decode formula pack",
		},
		{
			name:    "invalid entry",
			lines:   []string{"formulas:", "  - name: rpm", "    expression: B0", "    pid: zz"},
			wantErr: "formula pack entry 0",
		},
		{
			name:    "missing expression",
			lines:   []string{"formulas:", "  - name: rpm"},
			wantErr: "expression is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewLoader().Load(context.Background(), writePack(t, tt.lines...))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoaderLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "open formula pack")
}

func TestLoaderLoadCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader().Load(ctx, "unused.yaml")
	require.ErrorIs(t, err, context.Canceled)
}
