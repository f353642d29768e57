// Package insights derives the operating KPIs the planning views sit on top
// of: margins, burn, runway, and break-even. Every ratio is zero-guarded so
// a caller can always render something.
package insights

import (
	"github.com/cimera-fin/cimera/internal/model"
	"github.com/cimera-fin/cimera/internal/pricing"
	"github.com/cimera-fin/cimera/internal/projection"
)

// Summary condenses one projected year into its headline indicators.
type Summary struct {
	Año int `json:"año"`

	MargenContribucionPct float64 `json:"margenContribucionPct"`
	MargenEBITDAPct       float64 `json:"margenEBITDAPct"`
	MargenNetoPct         float64 `json:"margenNetoPct"`

	// BurnMensual is the average monthly cash consumption; zero when the
	// operation funds itself.
	BurnMensual     float64 `json:"burnMensual"`
	RunwayMeses     float64 `json:"runwayMeses"`
	RunwayIlimitado bool    `json:"runwayIlimitado"`

	// MesPuntoEquilibrio is the first month with non-negative EBITDA,
	// zero when the year never breaks even.
	MesPuntoEquilibrio int `json:"mesPuntoEquilibrio"`

	CACPorcentajeOpex float64 `json:"cacPorcentajeOpex"`

	// BaseFacturacionProfesional is the gross monthly invoice base implied
	// by the net professional disbursements, per the withholding gross-up.
	BaseFacturacionProfesional float64 `json:"baseFacturacionProfesional"`
}

// Summarize computes the indicator set for one annual projection.
func Summarize(annual projection.AnnualProjection, cfg model.Configuration, rates projection.Rates) Summary {
	t := annual.Totales
	s := Summary{Año: annual.Año}

	if t.IngresosBrutos != 0 {
		s.MargenContribucionPct = (t.IngresosBrutos - t.CostosDirectos) / t.IngresosBrutos
		s.MargenEBITDAPct = t.EBITDA / t.IngresosBrutos
		s.MargenNetoPct = t.UtilidadNeta / t.IngresosBrutos
	}
	if t.GastosOperativos != 0 {
		s.CACPorcentajeOpex = t.GastoMarketing / t.GastosOperativos
	}

	if t.UtilidadNeta < 0 {
		s.BurnMensual = pricing.Round(-t.UtilidadNeta / 12)
	}
	s.RunwayMeses = pricing.Runway(cfg.CapitalInicial, s.BurnMensual)
	if s.RunwayMeses == pricing.RunwayInfinite {
		s.RunwayIlimitado = true
		s.RunwayMeses = 0
	}

	for i, mes := range annual.Meses {
		if mes.IngresosBrutos > 0 && mes.EBITDA >= 0 {
			s.MesPuntoEquilibrio = i + 1
			break
		}
	}

	netoMensual := pricing.Round(t.PagoProfesionales * (1 - rates.TasaRetefuente) / 12)
	s.BaseFacturacionProfesional = pricing.GrossUp(netoMensual, rates.TasaRetefuente).BaseGravable
	return s
}
