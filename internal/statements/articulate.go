package statements

import (
	"github.com/cimera-fin/cimera/internal/catalog"
	"github.com/cimera-fin/cimera/internal/model"
	"github.com/cimera-fin/cimera/internal/pricing"
	"github.com/cimera-fin/cimera/internal/projection"
)

// Position is the rolling set of balances carried from one period into the
// next. It is the single source of opening figures for both the cash flow
// and the balance sheet, which is what keeps the statements in agreement.
type Position struct {
	Caja        float64 `json:"caja"`
	Cartera     float64 `json:"cartera"`
	Proveedores float64 `json:"proveedores"`
	Escrow      float64 `json:"escrow"`

	ActivoFijo            float64 `json:"activoFijo"`
	DepreciacionAcumulada float64 `json:"depreciacionAcumulada"`
	Intangibles           float64 `json:"intangibles"`
	AmortizacionAcumulada float64 `json:"amortizacionAcumulada"`

	CapitalPagado       float64 `json:"capitalPagado"`
	ReservaLegal        float64 `json:"reservaLegal"`
	UtilidadesRetenidas float64 `json:"utilidadesRetenidas"`
}

// OpeningPosition seeds the roll with the paid-in capital held as cash.
func OpeningPosition(cfg model.Configuration) Position {
	return Position{Caja: cfg.CapitalInicial, CapitalPagado: cfg.CapitalInicial}
}

// MonthlyStatements bundles the statements articulated for one month.
type MonthlyStatements struct {
	Proyeccion projection.MonthlyProjection `json:"proyeccion"`
	Flujo      CashFlowStatement            `json:"flujo"`
	Balance    BalanceSheet                 `json:"balance"`
}

// MonthlyCapex resolves the month's capital expenditure from the catalog's
// capex items, split between fixed and intangible assets. Annual items are
// spread evenly across the year.
func MonthlyCapex(snap *catalog.Snapshot) (fijo, intangible float64) {
	for _, item := range snap.ItemsByKind(catalog.KindCapex) {
		var monto float64
		switch item.Frecuencia {
		case catalog.FreqAnual:
			monto = pricing.Round(item.Valor / 12)
		case catalog.FreqMensual:
			monto = pricing.Round(item.Valor)
		default:
			continue
		}
		if item.Categoria == "intangibles" {
			intangible += monto
		} else {
			fijo += monto
		}
	}
	return fijo, intangible
}

// ArticulateMonth builds the cash flow and balance sheet for one projected
// month from a rolling position, and returns the position the next month
// starts from. Statements produced this way satisfy the triangulation
// contract: the balance sheet reports the cash flow's ending cash and its
// equity rolls forward by exactly the projection's net income.
func ArticulateMonth(p projection.MonthlyProjection, pos Position, cfg model.Configuration, rates projection.Rates, capexFijo, capexIntangible float64) (CashFlowStatement, BalanceSheet, Position) {
	cf := BuildCashFlow(p, Opening{
		Caja:        pos.Caja,
		Cartera:     pos.Cartera,
		Proveedores: pos.Proveedores,
		Escrow:      pos.Escrow,
	}, cfg, rates, capexFijo+capexIntangible)

	bs := BuildBalanceSheet(BalanceInputs{
		Año: p.Año,
		Mes: p.Mes,

		UtilidadNeta: p.UtilidadNeta,
		Depreciacion: p.Depreciacion,
		Amortizacion: p.Amortizacion,

		IngresosBrutos: p.IngresosBrutos,
		CostoVentas:    p.CostosDirectos,

		Caja:            cf.CajaFinal,
		DiasCartera:     cfg.DiasCartera,
		DiasProveedores: cfg.DiasProveedores,

		SaldoEscrow: cf.EscrowFinal,

		CapexFijo:       capexFijo,
		CapexIntangible: capexIntangible,

		ActivoFijoInicial:            pos.ActivoFijo,
		DepreciacionAcumuladaInicial: pos.DepreciacionAcumulada,
		IntangiblesIniciales:         pos.Intangibles,
		AmortizacionAcumuladaInicial: pos.AmortizacionAcumulada,

		CapitalPagado:                pos.CapitalPagado,
		ReservaLegalInicial:          pos.ReservaLegal,
		UtilidadesRetenidasIniciales: pos.UtilidadesRetenidas,

		TasaReservaLegal: rates.TasaReservaLegal,
	})

	next := Position{
		Caja:        cf.CajaFinal,
		Cartera:     cf.CarteraFinal,
		Proveedores: cf.ProveedoresFinal,
		Escrow:      cf.EscrowFinal,

		ActivoFijo:            pos.ActivoFijo + capexFijo,
		DepreciacionAcumulada: pos.DepreciacionAcumulada + p.Depreciacion,
		Intangibles:           pos.Intangibles + capexIntangible,
		AmortizacionAcumulada: pos.AmortizacionAcumulada + p.Amortizacion,

		CapitalPagado:       pos.CapitalPagado,
		ReservaLegal:        bs.ReservaLegal,
		UtilidadesRetenidas: bs.UtilidadesRetenidas,
	}
	return cf, bs, next
}

// ArticulateYear rolls the twelve months of an annual projection, resolving
// capex from the catalog snapshot.
func ArticulateYear(annual projection.AnnualProjection, pos Position, cfg model.Configuration, rates projection.Rates, snap *catalog.Snapshot) ([]MonthlyStatements, Position) {
	capexFijo, capexIntangible := MonthlyCapex(snap)
	out := make([]MonthlyStatements, 0, len(annual.Meses))
	for _, mes := range annual.Meses {
		cf, bs, next := ArticulateMonth(mes, pos, cfg, rates, capexFijo, capexIntangible)
		out = append(out, MonthlyStatements{Proyeccion: mes, Flujo: cf, Balance: bs})
		pos = next
	}
	return out, pos
}
