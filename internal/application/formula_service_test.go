package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/obdlog/internal/domain"
	"github.com/bnema/obdlog/internal/expr"
	"github.com/bnema/obdlog/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestFormulaService(t *testing.T, text string) (*FormulaService, *mocks.MockFormulaRepository, *mocks.MockFormulaPackLoader) {
	t.Helper()

	service, _ := newTestService(t, text)
	formulas := mocks.NewMockFormulaRepository(t)
	packs := mocks.NewMockFormulaPackLoader(t)
	return NewFormulaService(service, formulas, packs), formulas, packs
}

func TestFormulaServiceSaveNormalizes(t *testing.T) {
	service, formulas, _ := newTestFormulaService(t, "")

	want := domain.Formula{Name: "rpm", Expression: "[B2:B3] / 4", PID: "010c", Unit: "rpm"}
	formulas.EXPECT().Save(mockAnyContext(), want).Return(nil)

	got, err := service.Save(context.Background(), domain.Formula{
		Name:       " rpm ",
		Expression: " [B2:B3] / 4 ",
		PID:        " 010c",
		Unit:       "rpm ",
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFormulaServiceSaveRejectsInvalidFormulas(t *testing.T) {
	tests := []struct {
		name    string
		formula domain.Formula
		wantErr string
	}{
		{name: "missing name", formula: domain.Formula{Expression: "B0"}, wantErr: "name is required"},
		{name: "bad pid", formula: domain.Formula{Name: "x", Expression: "B0", PID: "01ZZ"}, wantErr: "not hexadecimal"},
		{name: "expression does not tokenize", formula: domain.Formula{Name: "x", Expression: "B0 % 2"}, wantErr: "tokenize error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newTestFormulaService(t, "")

			_, err := service.Save(context.Background(), tt.formula)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestFormulaServiceSaveCheckErrorUnwrapsToTokenize(t *testing.T) {
	service, _, _ := newTestFormulaService(t, "")

	_, err := service.Save(context.Background(), domain.Formula{Name: "x", Expression: "[B0:B"})
	require.ErrorIs(t, err, expr.ErrTokenize)
}

func TestFormulaServiceRemoveWrapsNotFound(t *testing.T) {
	service, formulas, _ := newTestFormulaService(t, "")
	formulas.EXPECT().Delete(mockAnyContext(), "rpm").Return(domain.ErrFormulaNotFound)

	err := service.Remove(context.Background(), "rpm")
	require.ErrorIs(t, err, domain.ErrFormulaNotFound)
}

func TestFormulaServiceImportSavesEveryEntry(t *testing.T) {
	service, formulas, packs := newTestFormulaService(t, "")

	pack := []domain.Formula{
		{Name: "rpm", Expression: "[B2:B3] / 4", PID: "010C"},
		{Name: "speed", Expression: "B2", PID: "010D"},
	}
	packs.EXPECT().Load(mockAnyContext(), "pack.yaml").Return(pack, nil)
	formulas.EXPECT().Save(mockAnyContext(), pack[0]).Return(nil)
	formulas.EXPECT().Save(mockAnyContext(), pack[1]).Return(nil)

	imported, err := service.Import(context.Background(), "pack.yaml")
	require.NoError(t, err)
	assert.Len(t, imported, 2)
}

func TestFormulaServiceImportSavesNothingWhenAnyEntryIsInvalid(t *testing.T) {
	service, _, packs := newTestFormulaService(t, "")

	packs.EXPECT().Load(mockAnyContext(), "pack.yaml").Return([]domain.Formula{
		{Name: "rpm", Expression: "[B2:B3] / 4"},
		{Name: "bad", Expression: "B0 $"},
		{Name: "worse", Expression: "[B0:B9]x"},
	}, nil)

	_, err := service.Import(context.Background(), "pack.yaml")
	require.Error(t, err)
	assert.ErrorContains(t, err, `invalid formula "bad"`)
	assert.ErrorContains(t, err, `invalid formula "worse"`)
}

func TestFormulaServiceImportWrapsLoaderError(t *testing.T) {
	service, _, packs := newTestFormulaService(t, "")
	packs.EXPECT().Load(mockAnyContext(), "pack.yaml").Return(nil, errors.New("boom"))

	_, err := service.Import(context.Background(), "pack.yaml")
	require.Error(t, err)
	assert.ErrorContains(t, err, "load formula pack: boom")
}

func TestFormulaServiceRunReportsEachFormula(t *testing.T) {
	service, formulas, _ := newTestFormulaService(t, sampleTranscript)

	formulas.EXPECT().List(mockAnyContext()).Return([]domain.Formula{
		{Name: "rpm", Expression: "[B2:B3] / 4", PID: "010C"},
		{Name: "speed", Expression: "B2", PID: "010D"},
		{Name: "missing", Expression: "B2", PID: "0142"},
		{Name: "default", Expression: "B0"},
	}, nil)

	results, err := service.Run(context.Background(), RunFormulasCommand{Path: "drive.log"})
	require.NoError(t, err)
	require.Len(t, results, 4)

	require.NotNil(t, results[0].Evaluation)
	assert.Equal(t, 1726.0, results[0].Evaluation.Result.Value)

	require.NotNil(t, results[1].Evaluation)
	assert.Equal(t, 50.0, results[1].Evaluation.Result.Value)

	assert.Nil(t, results[2].Evaluation)
	assert.ErrorIs(t, results[2].Err, domain.ErrPIDNotFound)

	require.NotNil(t, results[3].Evaluation)
	assert.Equal(t, "010C", results[3].Evaluation.PID)
	assert.Equal(t, 65.0, results[3].Evaluation.Result.Value)
}

func TestFormulaServiceRunSelectedNames(t *testing.T) {
	service, formulas, _ := newTestFormulaService(t, "")

	formulas.EXPECT().GetByName(mockAnyContext(), "rpm").Return(domain.Formula{}, domain.ErrFormulaNotFound)

	_, err := service.Run(context.Background(), RunFormulasCommand{Path: "drive.log", Names: []string{"rpm"}})
	require.ErrorIs(t, err, domain.ErrFormulaNotFound)
	formulas.AssertNotCalled(t, "List", mock.Anything)
}
