package macro

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultTableForYear(t *testing.T) {
	table := DefaultTable()

	p, err := table.ForYear(2025)
	require.NoError(t, err)
	require.Equal(t, 2025, p.Año)
	require.InDelta(t, 0.052, p.Inflacion, 1e-9)
	require.InDelta(t, 0.19, p.TasaIVA, 1e-9)
	require.InDelta(t, 0.35, p.TasaRenta, 1e-9)
}

func TestForYearMissing(t *testing.T) {
	table := DefaultTable()

	_, err := table.ForYear(1999)
	require.ErrorIs(t, err, ErrYearMissing)
}

func TestCovers(t *testing.T) {
	table := DefaultTable()

	require.NoError(t, table.Covers(2025, 2030))
	require.ErrorIs(t, table.Covers(2025, 2035), ErrYearMissing)
}
