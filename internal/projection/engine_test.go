package projection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cimera-fin/cimera/internal/catalog"
	"github.com/cimera-fin/cimera/internal/macro"
	"github.com/cimera-fin/cimera/internal/model"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	snap, err := catalog.Seed()
	require.NoError(t, err)
	eng, err := New(snap, macro.DefaultTable())
	require.NoError(t, err)
	return eng
}

func TestResolveRatesFromSeed(t *testing.T) {
	eng := newTestEngine(t)
	r := eng.Rates()

	require.InDelta(t, 6500, r.Pasarela.Digital, 1e-9)
	require.InDelta(t, 7200, r.Pasarela.Efectivo, 1e-9)
	require.InDelta(t, 350, r.Pasarela.SMS, 1e-9)
	require.InDelta(t, 800, r.CostoVerificacion, 1e-9)
	require.InDelta(t, 0.00966, r.TasaICA, 1e-9)
	require.InDelta(t, 0.11, r.TasaRetefuente, 1e-9)
	require.InDelta(t, 0.08, r.PorcentajeMarketing, 1e-9)
	require.InDelta(t, 0.10, r.TasaReservaLegal, 1e-9)
	require.InDelta(t, 1.52, r.FactorPrestacional, 1e-9)
}

func TestResolveRatesMissingCode(t *testing.T) {
	snap, err := catalog.NewSnapshot([]catalog.Item{
		{Codigo: "SRV-EST", Nombre: "Servicio", Tipo: catalog.KindIngreso, Valor: 150000, Frecuencia: catalog.FreqPorTransaccion, Activo: true},
	})
	require.NoError(t, err)

	_, err = New(snap, macro.DefaultTable())
	require.ErrorIs(t, err, ErrRateMissing)
}

func TestProjectMonthBaseScenario(t *testing.T) {
	eng := newTestEngine(t)
	cfg := model.DefaultConfiguration()
	volumes := model.Flat(map[string]int64{"SRV-EST": 100})

	p, err := eng.ProjectMonth(2025, 1, volumes, cfg)
	require.NoError(t, err)

	require.Equal(t, 15_000_000.0, p.IngresosBrutos)
	require.Equal(t, 2_850_000.0, p.IVAGenerado)
	require.Equal(t, 15_000_000.0, p.IngresosPorCategoria["servicios"])
	require.EqualValues(t, 100, p.VolumenTransacciones)

	require.Equal(t, 4_500_000.0, p.PagoProfesionales)
	require.Equal(t, 4_500_000.0, p.EscrowGenerado)
	require.Equal(t, 671_000.0, p.CostoPasarela)
	require.Equal(t, 10_500.0, p.CostoSMS)
	require.Equal(t, 12_000.0, p.CostoInfraestructura)
	require.Equal(t, 80_000.0, p.CostoVerificacion)
	require.Equal(t, 5_273_500.0, p.CostosDirectos)
	require.Equal(t, 10_500_000.0, p.IngresosNetos)

	require.Equal(t, 38_000_000.0, p.GastoNomina)
	require.Equal(t, 1_200_000.0, p.GastoMarketing)
	require.Equal(t, 12_200_000.0, p.GastoAdministracion)
	require.Equal(t, 3_500_000.0, p.GastoTecnologia)
	require.Equal(t, 54_900_000.0, p.GastosOperativos)

	require.Equal(t, -45_173_500.0, p.EBITDA)
	require.Equal(t, -48_873_500.0, p.UtilidadOperativa)
	require.Equal(t, 144_900.0, p.ICA)
	require.Equal(t, -49_018_400.0, p.UtilidadAntesImpuestos)
	require.Zero(t, p.ImpuestoRenta)
	require.Equal(t, -49_018_400.0, p.UtilidadNeta)
}

func TestProjectMonthProfitPaysRenta(t *testing.T) {
	eng := newTestEngine(t)
	cfg := model.DefaultConfiguration()
	volumes := model.Flat(map[string]int64{"SRV-EST": 1000})

	p, err := eng.ProjectMonth(2025, 1, volumes, cfg)
	require.NoError(t, err)

	require.Equal(t, 150_000_000.0, p.IngresosBrutos)
	require.Equal(t, 31_565_000.0, p.EBITDA)
	require.Equal(t, 26_416_000.0, p.UtilidadAntesImpuestos)
	require.Equal(t, 9_245_600.0, p.ImpuestoRenta)
	require.Equal(t, 17_170_400.0, p.UtilidadNeta)
}

func TestProjectMonthZeroVolumesKeepFixedCosts(t *testing.T) {
	eng := newTestEngine(t)
	cfg := model.DefaultConfiguration()

	p, err := eng.ProjectMonth(2025, 1, model.VolumeMap{}, cfg)
	require.NoError(t, err)

	require.Zero(t, p.IngresosBrutos)
	require.Zero(t, p.CostosDirectos)
	require.Zero(t, p.GastoMarketing)
	require.Equal(t, 38_000_000.0, p.GastoNomina)
	require.Equal(t, 53_700_000.0, p.GastosOperativos)
	require.Equal(t, -53_700_000.0, p.EBITDA)
	require.Zero(t, p.ICA)
	require.Zero(t, p.ImpuestoRenta)
	require.Equal(t, -57_400_000.0, p.UtilidadNeta)
}

func TestProjectMonthIndexesPrices(t *testing.T) {
	eng := newTestEngine(t)
	cfg := model.DefaultConfiguration()
	volumes := model.Flat(map[string]int64{"SRV-EST": 100})

	p, err := eng.ProjectMonth(2026, 1, volumes, cfg)
	require.NoError(t, err)

	// 150000 indexado al 4.1% de 2026.
	require.Equal(t, 15_615_000.0, p.IngresosBrutos)
}

func TestProjectMonthUnknownCodeIgnored(t *testing.T) {
	eng := newTestEngine(t)
	cfg := model.DefaultConfiguration()
	volumes := model.Flat(map[string]int64{"NO-EXISTE": 500})

	p, err := eng.ProjectMonth(2025, 1, volumes, cfg)
	require.NoError(t, err)
	require.Zero(t, p.IngresosBrutos)
	require.Zero(t, p.VolumenTransacciones)
}

func TestProjectMonthOutOfRange(t *testing.T) {
	eng := newTestEngine(t)
	cfg := model.DefaultConfiguration()

	_, err := eng.ProjectMonth(2025, 0, model.VolumeMap{}, cfg)
	require.ErrorIs(t, err, ErrMonthOutOfRange)
	_, err = eng.ProjectMonth(2025, 13, model.VolumeMap{}, cfg)
	require.ErrorIs(t, err, ErrMonthOutOfRange)
}

func TestProjectMonthMacroYearMissing(t *testing.T) {
	eng := newTestEngine(t)
	cfg := model.DefaultConfiguration()

	_, err := eng.ProjectMonth(1999, 1, model.VolumeMap{}, cfg)
	require.ErrorIs(t, err, macro.ErrYearMissing)
}

func TestProjectYearTotalsAreMonthSums(t *testing.T) {
	eng := newTestEngine(t)
	cfg := model.DefaultConfiguration()
	volumes := model.Flat(map[string]int64{"SRV-EST": 100, "SUS-PRO": 200})

	annual, err := eng.ProjectYear(2025, volumes, cfg)
	require.NoError(t, err)
	require.Equal(t, 2025, annual.Año)

	var brutos, neta, iva float64
	var trans int64
	for _, mes := range annual.Meses {
		brutos += mes.IngresosBrutos
		neta += mes.UtilidadNeta
		iva += mes.IVAGenerado
		trans += mes.VolumenTransacciones
	}
	require.Equal(t, brutos, annual.Totales.IngresosBrutos)
	require.Equal(t, neta, annual.Totales.UtilidadNeta)
	require.Equal(t, iva, annual.Totales.IVAGenerado)
	require.Equal(t, trans, annual.Totales.VolumenTransacciones)

	var servicios float64
	for _, mes := range annual.Meses {
		servicios += mes.IngresosPorCategoria["servicios"]
	}
	require.Equal(t, servicios, annual.Totales.IngresosPorCategoria["servicios"])
}

func TestProjectRangeOrdersYears(t *testing.T) {
	eng := newTestEngine(t)
	cfg := model.DefaultConfiguration()
	base := model.Flat(map[string]int64{"SRV-EST": 100})

	years, err := eng.ProjectRange(context.Background(), cfg, eng.GenerateVolumes(base, cfg))
	require.NoError(t, err)
	require.Len(t, years, 3)
	require.Equal(t, 2025, years[0].Año)
	require.Equal(t, 2026, years[1].Año)
	require.Equal(t, 2027, years[2].Año)

	// El crecimiento anual empuja ingresos año tras año.
	require.Greater(t, years[1].Totales.IngresosBrutos, years[0].Totales.IngresosBrutos)
	require.Greater(t, years[2].Totales.IngresosBrutos, years[1].Totales.IngresosBrutos)
}

func TestProjectRangeRejectsInvalidConfiguration(t *testing.T) {
	eng := newTestEngine(t)
	cfg := model.DefaultConfiguration()
	cfg.AñoFin = 2050

	_, err := eng.ProjectRange(context.Background(), cfg, nil)
	require.ErrorIs(t, err, model.ErrInvalidConfiguration)
}

func TestGenerateVolumesGrowth(t *testing.T) {
	eng := newTestEngine(t)
	cfg := model.DefaultConfiguration()
	cfg.ChurnMensual = 0
	base := model.Flat(map[string]int64{"SRV-EST": 100})

	byYear := eng.GenerateVolumes(base, cfg)
	require.Len(t, byYear, 3)
	require.EqualValues(t, 100, byYear[2025].For("SRV-EST", 1))
	require.EqualValues(t, 135, byYear[2026].For("SRV-EST", 1))
	require.EqualValues(t, 182, byYear[2027].For("SRV-EST", 6))
}

func TestGenerateVolumesChurnOnRecurring(t *testing.T) {
	eng := newTestEngine(t)
	cfg := model.DefaultConfiguration()
	base := model.Flat(map[string]int64{"SUS-PRO": 200, "SRV-EST": 100})

	byYear := eng.GenerateVolumes(base, cfg)

	// SUS-PRO es mensual: decae 3% por mes dentro del año.
	require.EqualValues(t, 200, byYear[2025].For("SUS-PRO", 1))
	require.EqualValues(t, 194, byYear[2025].For("SUS-PRO", 2))
	require.EqualValues(t, 188, byYear[2025].For("SUS-PRO", 3))
	// SRV-EST es transaccional: el churn no aplica.
	require.EqualValues(t, 100, byYear[2025].For("SRV-EST", 12))
}
