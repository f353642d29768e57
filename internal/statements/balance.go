package statements

import (
	"math"

	"github.com/cimera-fin/cimera/internal/pricing"
)

// tolerancia is the agreement threshold, in pesos, for the accounting
// identity and for cross-statement comparisons.
const tolerancia = 1.0

// EquityCheck is the balance sheet's self-check of the accounting identity.
type EquityCheck struct {
	Valido     bool    `json:"valido"`
	Diferencia float64 `json:"diferencia"`
}

// BalanceInputs are the figures the balance sheet is derived from. Cash is
// reported exactly as supplied: the cash flow statement is the authority on
// cash, the balance sheet only carries it.
type BalanceInputs struct {
	Año int
	Mes int

	UtilidadNeta float64
	Depreciacion float64
	Amortizacion float64

	IngresosBrutos float64
	CostoVentas    float64

	Caja            float64
	DiasCartera     float64
	DiasProveedores float64

	SaldoEscrow       float64
	ImpuestosPorPagar float64

	CapexFijo       float64
	CapexIntangible float64

	ActivoFijoInicial            float64
	DepreciacionAcumuladaInicial float64
	IntangiblesIniciales         float64
	AmortizacionAcumuladaInicial float64

	CapitalPagado                float64
	ReservaLegalInicial          float64
	UtilidadesRetenidasIniciales float64

	TasaReservaLegal float64
}

// BalanceSheet is the period-end estado de situación financiera.
type BalanceSheet struct {
	Año int `json:"año"`
	Mes int `json:"mes"`

	Caja             float64 `json:"caja"`
	CuentasPorCobrar float64 `json:"cuentasPorCobrar"`
	ActivoCorriente  float64 `json:"activoCorriente"`
	ActivoFijoNeto   float64 `json:"activoFijoNeto"`
	IntangiblesNetos float64 `json:"intangiblesNetos"`
	TotalActivos     float64 `json:"totalActivos"`

	CuentasPorPagar   float64 `json:"cuentasPorPagar"`
	PasivoEscrow      float64 `json:"pasivoEscrow"`
	ImpuestosPorPagar float64 `json:"impuestosPorPagar"`
	TotalPasivos      float64 `json:"totalPasivos"`

	CapitalPagado       float64 `json:"capitalPagado"`
	ReservaLegal        float64 `json:"reservaLegal"`
	UtilidadesRetenidas float64 `json:"utilidadesRetenidas"`
	TotalPatrimonio     float64 `json:"totalPatrimonio"`

	// UtilidadDelPeriodo is the net income the roll-forward consumed; the
	// triangulation validator compares it against the income statement.
	UtilidadDelPeriodo float64 `json:"utilidadDelPeriodo"`

	EcuacionPatrimonial EquityCheck `json:"ecuacionPatrimonial"`
}

// BuildBalanceSheet derives period-end balances from working-capital ratios,
// accumulated depreciation, and the retained-earnings roll-forward. The
// identity check is reported, never enforced: inconsistent inputs produce an
// invalid flag with the raw difference for diagnostics.
func BuildBalanceSheet(in BalanceInputs) BalanceSheet {
	reservaRate := in.TasaReservaLegal
	if reservaRate == 0 {
		reservaRate = 0.10
	}

	bs := BalanceSheet{
		Año: in.Año,
		Mes: in.Mes,

		Caja:             in.Caja,
		CuentasPorCobrar: pricing.Round(in.IngresosBrutos / 30 * in.DiasCartera),

		CuentasPorPagar:   pricing.Round(in.CostoVentas / 30 * in.DiasProveedores),
		PasivoEscrow:      in.SaldoEscrow,
		ImpuestosPorPagar: in.ImpuestosPorPagar,

		CapitalPagado:      in.CapitalPagado,
		UtilidadDelPeriodo: in.UtilidadNeta,
	}

	bs.ActivoFijoNeto = (in.ActivoFijoInicial + in.CapexFijo) -
		(in.DepreciacionAcumuladaInicial + in.Depreciacion)
	bs.IntangiblesNetos = (in.IntangiblesIniciales + in.CapexIntangible) -
		(in.AmortizacionAcumuladaInicial + in.Amortizacion)

	// Reserva legal: apropiacion del 10% de la utilidad positiva. Las
	// perdidas nunca reducen la reserva ya constituida.
	var apropiacion float64
	if in.UtilidadNeta > 0 {
		apropiacion = pricing.Round(in.UtilidadNeta * reservaRate)
	}
	bs.ReservaLegal = in.ReservaLegalInicial + apropiacion
	bs.UtilidadesRetenidas = in.UtilidadesRetenidasIniciales + in.UtilidadNeta - apropiacion

	bs.ActivoCorriente = bs.Caja + bs.CuentasPorCobrar
	bs.TotalActivos = bs.ActivoCorriente + bs.ActivoFijoNeto + bs.IntangiblesNetos
	bs.TotalPasivos = bs.CuentasPorPagar + bs.PasivoEscrow + bs.ImpuestosPorPagar
	bs.TotalPatrimonio = bs.CapitalPagado + bs.ReservaLegal + bs.UtilidadesRetenidas

	diff := bs.TotalActivos - bs.TotalPasivos - bs.TotalPatrimonio
	bs.EcuacionPatrimonial = EquityCheck{Valido: math.Abs(diff) < tolerancia, Diferencia: diff}
	return bs
}
