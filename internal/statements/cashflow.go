package statements

import (
	"math"

	"github.com/cimera-fin/cimera/internal/model"
	"github.com/cimera-fin/cimera/internal/pricing"
	"github.com/cimera-fin/cimera/internal/projection"
)

// Opening carries the balances the cash flow statement rolls forward from:
// cash plus the working-capital positions whose variation bridges accrual
// figures to cash movements.
type Opening struct {
	Caja        float64 `json:"caja"`
	Cartera     float64 `json:"cartera"`
	Proveedores float64 `json:"proveedores"`
	Escrow      float64 `json:"escrow"`
}

// CashFlowStatement is the period flujo de caja. Ending cash is opening cash
// plus net flow by construction; there is no other way to compute it.
type CashFlowStatement struct {
	Año int `json:"año"`
	Mes int `json:"mes"`

	RecaudoDigital  float64 `json:"recaudoDigital"`
	RecaudoEfectivo float64 `json:"recaudoEfectivo"`
	RecaudoIVA      float64 `json:"recaudoIVA"`
	TotalRecaudo    float64 `json:"totalRecaudo"`

	PagoProfesionales float64 `json:"pagoProfesionales"`
	PagoRetenciones   float64 `json:"pagoRetenciones"`
	PagoProveedores   float64 `json:"pagoProveedores"`
	PagoNomina        float64 `json:"pagoNomina"`
	PagoMarketing     float64 `json:"pagoMarketing"`

	PagoIVA   float64 `json:"pagoIVA"`
	PagoICA   float64 `json:"pagoICA"`
	PagoRenta float64 `json:"pagoRenta"`

	// Variaciones de capital de trabajo: el puente entre lo causado y lo
	// efectivamente movido en caja. Positivas cuando el saldo crece.
	VariacionCartera     float64 `json:"variacionCartera"`
	VariacionProveedores float64 `json:"variacionProveedores"`
	VariacionEscrow      float64 `json:"variacionEscrow"`

	FlujoOperativo float64 `json:"flujoOperativo"`
	InversionCapex float64 `json:"inversionCapex"`
	FlujoNeto      float64 `json:"flujoNeto"`

	CajaInicial float64 `json:"cajaInicial"`
	CajaFinal   float64 `json:"cajaFinal"`

	CarteraFinal     float64 `json:"carteraFinal"`
	ProveedoresFinal float64 `json:"proveedoresFinal"`
	EscrowFinal      float64 `json:"escrowFinal"`

	ConciliaConBalance bool `json:"conciliaConBalance"`
}

// BuildCashFlow derives the period cash movements from one monthly
// projection. Collections split by the configured digital mix; IVA is
// collected on top of revenue and remitted the same period, as are ICA and
// renta (cash and accrual timing coincide for taxes). Escrow retains the
// configured days of professional payouts before disbursement.
func BuildCashFlow(p projection.MonthlyProjection, opening Opening, cfg model.Configuration, rates projection.Rates, capex float64) CashFlowStatement {
	cf := CashFlowStatement{
		Año: p.Año,
		Mes: p.Mes,

		RecaudoIVA:  p.IVAGenerado,
		CajaInicial: opening.Caja,
	}
	cf.RecaudoDigital = pricing.Round(p.IngresosBrutos * cfg.MezclaDigital)
	cf.RecaudoEfectivo = p.IngresosBrutos - cf.RecaudoDigital
	cf.TotalRecaudo = cf.RecaudoDigital + cf.RecaudoEfectivo + cf.RecaudoIVA

	// Retefuente se descuenta del giro al profesional y se traslada a la
	// DIAN; la salida de caja total es el pago causado.
	cf.PagoRetenciones = pricing.Round(p.PagoProfesionales * rates.TasaRetefuente)
	cf.PagoProfesionales = p.PagoProfesionales - cf.PagoRetenciones

	cf.PagoProveedores = p.CostoPasarela + p.CostoSMS + p.CostoInfraestructura +
		p.CostoVerificacion + p.OtrosCostosDirectos +
		p.GastoAdministracion + p.GastoTecnologia
	cf.PagoNomina = p.GastoNomina
	cf.PagoMarketing = p.GastoMarketing

	cf.PagoIVA = p.IVAGenerado
	cf.PagoICA = p.ICA
	cf.PagoRenta = p.ImpuestoRenta

	cf.CarteraFinal = pricing.Round(p.IngresosBrutos / 30 * cfg.DiasCartera)
	cf.ProveedoresFinal = pricing.Round(p.CostosDirectos / 30 * cfg.DiasProveedores)
	cf.EscrowFinal = pricing.Round(p.EscrowGenerado / 30 * cfg.DiasEscrow)
	cf.VariacionCartera = cf.CarteraFinal - opening.Cartera
	cf.VariacionProveedores = cf.ProveedoresFinal - opening.Proveedores
	cf.VariacionEscrow = cf.EscrowFinal - opening.Escrow

	pagos := cf.PagoProfesionales + cf.PagoRetenciones + cf.PagoProveedores +
		cf.PagoNomina + cf.PagoMarketing
	impuestos := cf.PagoIVA + cf.PagoICA + cf.PagoRenta
	cf.FlujoOperativo = cf.TotalRecaudo - pagos - impuestos -
		cf.VariacionCartera + cf.VariacionProveedores + cf.VariacionEscrow

	cf.InversionCapex = pricing.Round(capex)
	cf.FlujoNeto = cf.FlujoOperativo - cf.InversionCapex
	cf.CajaFinal = cf.CajaInicial + cf.FlujoNeto
	cf.ConciliaConBalance = math.Abs(cf.CajaFinal-(cf.CajaInicial+cf.FlujoNeto)) < tolerancia
	return cf
}
