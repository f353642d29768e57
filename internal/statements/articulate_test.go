package statements

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cimera-fin/cimera/internal/catalog"
	"github.com/cimera-fin/cimera/internal/macro"
	"github.com/cimera-fin/cimera/internal/model"
	"github.com/cimera-fin/cimera/internal/projection"
)

func articulatedYear(t *testing.T) ([]MonthlyStatements, model.Configuration) {
	t.Helper()
	snap, err := catalog.Seed()
	require.NoError(t, err)
	eng, err := projection.New(snap, macro.DefaultTable())
	require.NoError(t, err)

	cfg := model.DefaultConfiguration()
	volumes := model.Flat(map[string]int64{"SRV-EST": 100, "SUS-PRO": 200})
	annual, err := eng.ProjectYear(2025, volumes, cfg)
	require.NoError(t, err)

	months, _ := ArticulateYear(annual, OpeningPosition(cfg), cfg, eng.Rates(), snap)
	require.Len(t, months, 12)
	return months, cfg
}

func TestMonthlyCapexFromSeed(t *testing.T) {
	snap, err := catalog.Seed()
	require.NoError(t, err)

	fijo, intangible := MonthlyCapex(snap)
	require.Zero(t, fijo)
	// CAPEX anual de 60M repartido en doce meses.
	require.Equal(t, 5_000_000.0, intangible)
}

func TestArticulatedBalanceHoldsEveryMonth(t *testing.T) {
	months, _ := articulatedYear(t)

	for _, m := range months {
		require.Truef(t, m.Balance.EcuacionPatrimonial.Valido,
			"mes %d: diferencia %.2f", m.Balance.Mes, m.Balance.EcuacionPatrimonial.Diferencia)
	}
}

func TestArticulatedCashAgreesWithBalance(t *testing.T) {
	months, _ := articulatedYear(t)

	for _, m := range months {
		require.True(t, m.Flujo.ConciliaConBalance)
		require.Equal(t, m.Flujo.CajaFinal, m.Balance.Caja, "mes %d", m.Flujo.Mes)
		require.Equal(t, m.Flujo.CarteraFinal, m.Balance.CuentasPorCobrar)
		require.Equal(t, m.Flujo.EscrowFinal, m.Balance.PasivoEscrow)
	}
}

func TestArticulatedEquityGrowsByNetIncome(t *testing.T) {
	months, cfg := articulatedYear(t)

	previo := cfg.CapitalInicial
	for _, m := range months {
		delta := m.Balance.TotalPatrimonio - previo
		require.InDeltaf(t, m.Proyeccion.UtilidadNeta, delta, 0.01,
			"mes %d: el patrimonio debe variar exactamente la utilidad", m.Balance.Mes)
		previo = m.Balance.TotalPatrimonio
	}
}

func TestArticulatedCashRollsAcrossMonths(t *testing.T) {
	months, cfg := articulatedYear(t)

	require.Equal(t, cfg.CapitalInicial, months[0].Flujo.CajaInicial)
	for i := 1; i < len(months); i++ {
		require.Equal(t, months[i-1].Flujo.CajaFinal, months[i].Flujo.CajaInicial)
	}
}

func TestArticulatedPositionRollsAcrossYears(t *testing.T) {
	snap, err := catalog.Seed()
	require.NoError(t, err)
	eng, err := projection.New(snap, macro.DefaultTable())
	require.NoError(t, err)

	cfg := model.DefaultConfiguration()
	volumes := model.Flat(map[string]int64{"SRV-EST": 100})
	pos := OpeningPosition(cfg)

	for _, year := range cfg.Años() {
		annual, err := eng.ProjectYear(year, volumes, cfg)
		require.NoError(t, err)

		months, next := ArticulateYear(annual, pos, cfg, eng.Rates(), snap)
		last := months[len(months)-1]
		require.Equal(t, last.Flujo.CajaFinal, next.Caja)
		require.Equal(t, last.Balance.ReservaLegal, next.ReservaLegal)
		require.Equal(t, last.Balance.UtilidadesRetenidas, next.UtilidadesRetenidas)
		// La identidad sigue valida al cruzar el cierre de año.
		require.True(t, last.Balance.EcuacionPatrimonial.Valido)
		pos = next
	}
}

func TestArticulatedFiguresAreWholePesos(t *testing.T) {
	months, _ := articulatedYear(t)

	for _, m := range months {
		for campo, v := range map[string]float64{
			"cajaFinal":      m.Flujo.CajaFinal,
			"flujoOperativo": m.Flujo.FlujoOperativo,
			"totalActivos":   m.Balance.TotalActivos,
			"patrimonio":     m.Balance.TotalPatrimonio,
		} {
			require.Equalf(t, math.Trunc(v), v, "mes %d campo %s", m.Flujo.Mes, campo)
		}
	}
}
