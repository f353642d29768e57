package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cimera-fin/cimera/internal/catalog"
	"github.com/cimera-fin/cimera/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "cimera.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestScenarioRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	sc := &Scenario{
		Nombre:      "base",
		Descripcion: "escenario de arranque",
		Config:      model.DefaultConfiguration(),
		Overrides:   catalog.Overlay{"SRV-EST": 180000},
	}
	require.NoError(t, st.SaveScenario(ctx, sc))
	require.NotEmpty(t, sc.ID)

	got, err := st.GetScenario(ctx, "base")
	require.NoError(t, err)
	require.Equal(t, sc.ID, got.ID)
	require.Equal(t, "escenario de arranque", got.Descripcion)
	require.Equal(t, sc.Config.CapitalInicial, got.Config.CapitalInicial)
	require.InDelta(t, 180000, got.Overrides["SRV-EST"], 1e-9)
}

func TestSaveScenarioUpsertsByName(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	first := &Scenario{Nombre: "base", Config: model.DefaultConfiguration()}
	require.NoError(t, st.SaveScenario(ctx, first))

	updated := &Scenario{
		Nombre:      "base",
		Descripcion: "ajustado",
		Config:      model.DefaultConfiguration(),
		Overrides:   catalog.Overlay{"MKT-DIG": 0.10},
	}
	require.NoError(t, st.SaveScenario(ctx, updated))

	got, err := st.GetScenario(ctx, "base")
	require.NoError(t, err)
	require.Equal(t, first.ID, got.ID)
	require.Equal(t, "ajustado", got.Descripcion)
	require.InDelta(t, 0.10, got.Overrides["MKT-DIG"], 1e-9)

	all, err := st.ListScenarios(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestGetScenarioMissing(t *testing.T) {
	st := openTestStore(t)

	_, err := st.GetScenario(context.Background(), "no-existe")
	require.ErrorIs(t, err, ErrScenarioNotFound)
}

func TestDeleteScenario(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	require.NoError(t, st.SaveScenario(ctx, &Scenario{Nombre: "temporal", Config: model.DefaultConfiguration()}))
	require.NoError(t, st.DeleteScenario(ctx, "temporal"))
	require.ErrorIs(t, st.DeleteScenario(ctx, "temporal"), ErrScenarioNotFound)
}

func TestRunsPerScenario(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	sc := &Scenario{Nombre: "base", Config: model.DefaultConfiguration()}
	require.NoError(t, st.SaveScenario(ctx, sc))

	run := &Run{
		ScenarioID:   sc.ID,
		AñoInicio:    2025,
		AñoFin:       2027,
		UtilidadNeta: -588_220_800,
		Valido:       true,
		Resultado:    "triangulacion valida",
	}
	require.NoError(t, st.SaveRun(ctx, run))
	require.NotEmpty(t, run.ID)

	runs, err := st.ListRuns(ctx, sc.ID)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.True(t, runs[0].Valido)
	require.Equal(t, "triangulacion valida", runs[0].Resultado)
	require.InDelta(t, -588_220_800, runs[0].UtilidadNeta, 0.01)
}
