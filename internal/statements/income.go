// Package statements reshapes projection output into the three formal
// financial statements and provides the articulated month-by-month roll that
// keeps them in agreement. Builders are pure; each returned statement is
// owned solely by its caller.
package statements

import (
	"sort"

	"github.com/cimera-fin/cimera/internal/projection"
)

// RevenueLine is one ordinary-revenue subcategory of the income statement.
type RevenueLine struct {
	Categoria string  `json:"categoria"`
	Monto     float64 `json:"monto"`
}

// IncomeStatement is the formally categorized estado de resultados (ERI).
type IncomeStatement struct {
	Año int `json:"año"`

	IngresosOrdinarios []RevenueLine `json:"ingresosOrdinarios"`
	TotalIngresos      float64       `json:"totalIngresos"`

	CostoVentas   float64 `json:"costoVentas"`
	UtilidadBruta float64 `json:"utilidadBruta"`

	GastosVentas         float64 `json:"gastosVentas"`
	GastosAdministracion float64 `json:"gastosAdministracion"`

	EBITDA            float64 `json:"ebitda"`
	Depreciacion      float64 `json:"depreciacion"`
	Amortizacion      float64 `json:"amortizacion"`
	UtilidadOperativa float64 `json:"utilidadOperativa"`

	OtrosImpuestos         float64 `json:"otrosImpuestos"`
	UtilidadAntesImpuestos float64 `json:"utilidadAntesImpuestos"`
	ImpuestoRenta          float64 `json:"impuestoRenta"`
	UtilidadNeta           float64 `json:"utilidadNeta"`

	MargenBruto  float64 `json:"margenBruto"`
	MargenEBITDA float64 `json:"margenEBITDA"`
	MargenNeto   float64 `json:"margenNeto"`
}

// BuildIncomeStatement reclassifies annual totals into the ERI layout. The
// subcategory lines carry the projection's already-rounded figures, so their
// sum equals the total revenue exactly; nothing is re-derived from unrounded
// inputs. Selling expenses are the customer-acquisition spend; everything
// else operates as administration.
func BuildIncomeStatement(annual projection.AnnualProjection) IncomeStatement {
	t := annual.Totales

	lines := make([]RevenueLine, 0, len(t.IngresosPorCategoria))
	for categoria, monto := range t.IngresosPorCategoria {
		lines = append(lines, RevenueLine{Categoria: categoria, Monto: monto})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Categoria < lines[j].Categoria })

	eri := IncomeStatement{
		Año:                annual.Año,
		IngresosOrdinarios: lines,
		TotalIngresos:      t.IngresosBrutos,

		CostoVentas: t.CostosDirectos,

		GastosVentas:         t.GastoMarketing,
		GastosAdministracion: t.GastoNomina + t.GastoAdministracion + t.GastoTecnologia,

		Depreciacion: t.Depreciacion,
		Amortizacion: t.Amortizacion,

		OtrosImpuestos: t.ICA,
		ImpuestoRenta:  t.ImpuestoRenta,
		UtilidadNeta:   t.UtilidadNeta,
	}
	eri.UtilidadBruta = eri.TotalIngresos - eri.CostoVentas
	eri.EBITDA = eri.UtilidadBruta - eri.GastosVentas - eri.GastosAdministracion
	eri.UtilidadOperativa = eri.EBITDA - eri.Depreciacion - eri.Amortizacion
	eri.UtilidadAntesImpuestos = eri.UtilidadOperativa - eri.OtrosImpuestos

	if eri.TotalIngresos != 0 {
		eri.MargenBruto = eri.UtilidadBruta / eri.TotalIngresos
		eri.MargenEBITDA = eri.EBITDA / eri.TotalIngresos
		eri.MargenNeto = eri.UtilidadNeta / eri.TotalIngresos
	}
	return eri
}
