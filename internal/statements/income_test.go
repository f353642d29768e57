package statements

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cimera-fin/cimera/internal/projection"
)

func TestBuildIncomeStatement(t *testing.T) {
	annual := projection.AnnualProjection{Año: 2025}
	annual.Totales = projection.MonthlyProjection{
		Año:            2025,
		IngresosBrutos: 200_000_000,
		IngresosPorCategoria: map[string]float64{
			"suscripciones": 20_000_000,
			"servicios":     180_000_000,
		},
		CostosDirectos:      70_000_000,
		GastoMarketing:      16_000_000,
		GastoNomina:         38_000_000,
		GastoAdministracion: 12_200_000,
		GastoTecnologia:     3_500_000,
		Depreciacion:        2_500_000,
		Amortizacion:        1_200_000,
		ICA:                 1_932_000,
		ImpuestoRenta:       10_000_000,
		UtilidadNeta:        44_668_000,
	}

	eri := BuildIncomeStatement(annual)

	require.Equal(t, 2025, eri.Año)
	// Las lineas salen ordenadas por categoria y suman el total exacto.
	require.Len(t, eri.IngresosOrdinarios, 2)
	require.Equal(t, "servicios", eri.IngresosOrdinarios[0].Categoria)
	require.Equal(t, "suscripciones", eri.IngresosOrdinarios[1].Categoria)
	var suma float64
	for _, line := range eri.IngresosOrdinarios {
		suma += line.Monto
	}
	require.Equal(t, eri.TotalIngresos, suma)

	require.Equal(t, 130_000_000.0, eri.UtilidadBruta)
	require.Equal(t, 16_000_000.0, eri.GastosVentas)
	require.Equal(t, 53_700_000.0, eri.GastosAdministracion)
	require.Equal(t, 60_300_000.0, eri.EBITDA)
	require.Equal(t, 56_600_000.0, eri.UtilidadOperativa)
	require.Equal(t, 54_668_000.0, eri.UtilidadAntesImpuestos)
	require.Equal(t, 44_668_000.0, eri.UtilidadNeta)

	require.InDelta(t, 0.65, eri.MargenBruto, 1e-9)
	require.InDelta(t, 0.3015, eri.MargenEBITDA, 1e-9)
	require.InDelta(t, 0.22334, eri.MargenNeto, 1e-9)
}

func TestBuildIncomeStatementZeroRevenue(t *testing.T) {
	annual := projection.AnnualProjection{Año: 2025}
	annual.Totales = projection.MonthlyProjection{
		Año:                  2025,
		IngresosPorCategoria: map[string]float64{},
		GastoNomina:          38_000_000,
	}

	eri := BuildIncomeStatement(annual)

	require.Empty(t, eri.IngresosOrdinarios)
	require.Zero(t, eri.MargenBruto)
	require.Zero(t, eri.MargenEBITDA)
	require.Zero(t, eri.MargenNeto)
	require.Equal(t, -38_000_000.0, eri.EBITDA)
}
