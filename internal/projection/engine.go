package projection

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cimera-fin/cimera/internal/catalog"
	"github.com/cimera-fin/cimera/internal/macro"
	"github.com/cimera-fin/cimera/internal/model"
	"github.com/cimera-fin/cimera/internal/pricing"
)

// ErrMonthOutOfRange indicates a month outside 1-12.
var ErrMonthOutOfRange = errors.New("proyeccion: mes fuera de rango")

// Engine projects months and years against one immutable catalog snapshot.
// It holds no mutable state, so concurrent projections are safe.
type Engine struct {
	snap  *catalog.Snapshot
	macro *macro.Table
	rates Rates
}

// New builds an engine, resolving the canonical rates from the snapshot.
func New(snap *catalog.Snapshot, table *macro.Table) (*Engine, error) {
	if snap == nil {
		return nil, errors.New("proyeccion: snapshot de catalogo requerido")
	}
	if table == nil {
		return nil, errors.New("proyeccion: tabla macro requerida")
	}
	rates, err := ResolveRates(snap)
	if err != nil {
		return nil, err
	}
	return &Engine{snap: snap, macro: table, rates: rates}, nil
}

// NewWithRates builds an engine with an explicit rate record, bypassing
// catalog resolution. Used by scenarios that override policy rates.
func NewWithRates(snap *catalog.Snapshot, table *macro.Table, rates Rates) *Engine {
	return &Engine{snap: snap, macro: table, rates: rates}
}

// Rates exposes the engine's resolved rate record.
func (e *Engine) Rates() Rates { return e.rates }

// Snapshot exposes the engine's catalog snapshot.
func (e *Engine) Snapshot() *catalog.Snapshot { return e.snap }

// ProjectMonth derives the full figure set for one month. Unknown codes in
// the volume map contribute nothing; all-zero volumes still carry the fixed
// operating costs. Every field is rounded to whole pesos as the last step.
func (e *Engine) ProjectMonth(year, month int, volumes model.VolumeMap, cfg model.Configuration) (MonthlyProjection, error) {
	if month < 1 || month > 12 {
		return MonthlyProjection{}, fmt.Errorf("%w: %d", ErrMonthOutOfRange, month)
	}
	params, err := e.macro.ForYear(year)
	if err != nil {
		return MonthlyProjection{}, err
	}

	p := MonthlyProjection{
		Año:                  year,
		Mes:                  month,
		IngresosPorCategoria: make(map[string]float64),
	}

	// 1. Ingresos por item activo.
	var escrowVol int64
	for _, item := range e.snap.ItemsByKind(catalog.KindIngreso) {
		vol := volumes.For(item.Codigo, month)
		if vol <= 0 {
			continue
		}
		price := pricing.IndexedPrice(item.Valor, cfg.AñoBasePrecios, year, e.macro)
		ingreso := pricing.Round(price * float64(vol))
		p.IngresosBrutos += ingreso
		p.IngresosPorCategoria[item.Categoria] += ingreso
		if item.AplicaIVA {
			p.IVAGenerado += pricing.Round(ingreso * params.TasaIVA)
		}
		if item.Transaccional() {
			p.VolumenTransacciones += vol
		}
		if item.GeneraEscrow {
			escrowVol += vol
		}
	}
	// 2. Costos variables: pagos profesionales y costos por volumen.
	for _, item := range e.snap.ItemsByKind(catalog.KindCostoVariable) {
		switch {
		case item.EsPorcentaje && item.VinculadoA != "":
			linked, ok := e.snap.ItemByCode(item.VinculadoA)
			if !ok {
				continue
			}
			vol := volumes.For(item.VinculadoA, month)
			if vol <= 0 {
				continue
			}
			price := pricing.IndexedPrice(linked.Valor, cfg.AñoBasePrecios, year, e.macro)
			pago := pricing.Round(pricing.Round(price*float64(vol)) * item.Valor)
			p.PagoProfesionales += pago
			if linked.GeneraEscrow {
				p.EscrowGenerado += pago
			}
		case item.Categoria == "infraestructura":
			p.CostoInfraestructura += pricing.Round(item.Valor * float64(p.VolumenTransacciones))
		case item.Categoria == "pasarela", item.Categoria == "notificaciones", item.Categoria == "verificacion":
			// Blended below from the rate record, across all transactional volume.
		default:
			driver := item.Codigo
			if item.VinculadoA != "" {
				driver = item.VinculadoA
			}
			if vol := volumes.For(driver, month); vol > 0 {
				p.OtrosCostosDirectos += pricing.Round(item.Valor * float64(vol))
			}
		}
	}
	volTotal := float64(p.VolumenTransacciones)
	p.CostoPasarela = pricing.Round(volTotal * e.rates.Pasarela.Blended(cfg.MezclaDigital))
	p.CostoSMS = pricing.Round(volTotal * (1 - cfg.MezclaDigital) * e.rates.Pasarela.SMS)
	p.CostoVerificacion = pricing.Round(float64(escrowVol) * e.rates.CostoVerificacion)
	p.CostosDirectos = p.PagoProfesionales + p.CostoPasarela + p.CostoSMS +
		p.CostoInfraestructura + p.CostoVerificacion + p.OtrosCostosDirectos
	// Ingreso neto de la plataforma: lo facturado menos lo girado a los
	// profesionales. Precios de catalogo no incluyen IVA; el IVA se cobra
	// aparte y nunca entra al estado de resultados.
	p.IngresosNetos = p.IngresosBrutos - p.PagoProfesionales

	// 3. Gastos fijos: nomina, marketing sobre ingresos, y partidas de catalogo.
	if cfg.Empleados > 0 {
		p.GastoNomina = pricing.Round(float64(cfg.Empleados) * cfg.SalarioPromedio * e.rates.FactorPrestacional)
	} else {
		p.GastoNomina = pricing.Round(e.snap.TotalPayroll(e.rates.FactorPrestacional))
	}
	p.GastoMarketing = pricing.Round(p.IngresosBrutos * e.rates.PorcentajeMarketing)
	for _, item := range e.snap.ItemsByKind(catalog.KindGastoFijo) {
		if item.EsNomina || item.EsPorcentaje {
			continue
		}
		monto := item.Valor
		if item.Frecuencia == catalog.FreqAnual {
			monto = item.Valor / 12
		}
		switch item.Categoria {
		case "tecnologia":
			p.GastoTecnologia += pricing.Round(monto)
		default:
			p.GastoAdministracion += pricing.Round(monto)
		}
	}
	p.Depreciacion = pricing.Round(cfg.DepreciacionMensual)
	p.Amortizacion = pricing.Round(cfg.AmortizacionMensual)
	p.GastosOperativos = p.GastoNomina + p.GastoMarketing + p.GastoAdministracion + p.GastoTecnologia

	// 4-6. Resultados: EBITDA, operacional, ICA y renta solo sobre utilidad
	// positiva (las perdidas no generan credito fiscal en este modelo).
	p.EBITDA = p.IngresosBrutos - p.CostosDirectos - p.GastosOperativos
	p.UtilidadOperativa = p.EBITDA - p.Depreciacion - p.Amortizacion
	p.ICA = pricing.Round(p.IngresosBrutos * e.rates.TasaICA)
	p.UtilidadAntesImpuestos = p.UtilidadOperativa - p.ICA
	if p.UtilidadAntesImpuestos > 0 {
		p.ImpuestoRenta = pricing.Round(p.UtilidadAntesImpuestos * params.TasaRenta)
	}
	p.UtilidadNeta = p.UtilidadAntesImpuestos - p.ImpuestoRenta

	// 7. Redondeo uniforme de cierre.
	p.round()
	return p, nil
}

// round applies the canonical whole-peso rounding to every derived field.
// Most fields are already rounded; this keeps the guarantee uniform.
func (p *MonthlyProjection) round() {
	fields := []*float64{
		&p.IngresosBrutos, &p.IVAGenerado, &p.IngresosNetos,
		&p.PagoProfesionales, &p.CostoPasarela, &p.CostoSMS,
		&p.CostoInfraestructura, &p.CostoVerificacion, &p.OtrosCostosDirectos,
		&p.CostosDirectos, &p.GastoNomina, &p.GastoMarketing,
		&p.GastoAdministracion, &p.GastoTecnologia, &p.GastosOperativos,
		&p.Depreciacion, &p.Amortizacion, &p.EBITDA, &p.UtilidadOperativa,
		&p.ICA, &p.UtilidadAntesImpuestos, &p.ImpuestoRenta, &p.UtilidadNeta,
		&p.EscrowGenerado,
	}
	for _, f := range fields {
		*f = pricing.Round(*f)
	}
	for categoria, monto := range p.IngresosPorCategoria {
		p.IngresosPorCategoria[categoria] = pricing.Round(monto)
	}
}

// ProjectYear projects the twelve months of a year and sums them into the
// totals record. Totals are the arithmetic sum of the months for every field.
func (e *Engine) ProjectYear(year int, volumes model.VolumeMap, cfg model.Configuration) (AnnualProjection, error) {
	annual := AnnualProjection{Año: year}
	annual.Totales = MonthlyProjection{
		Año:                  year,
		IngresosPorCategoria: make(map[string]float64),
	}
	for month := 1; month <= 12; month++ {
		proj, err := e.ProjectMonth(year, month, volumes, cfg)
		if err != nil {
			return AnnualProjection{}, err
		}
		annual.Meses[month-1] = proj
		annual.Totales.add(proj)
	}
	return annual, nil
}

// ProjectRange validates the configuration and projects every year of the
// scenario, one goroutine per year. Years are independent, so the batch is
// embarrassingly parallel; results come back in year order regardless.
func (e *Engine) ProjectRange(ctx context.Context, cfg model.Configuration, volumesByYear map[int]model.VolumeMap) ([]AnnualProjection, error) {
	if err := cfg.Validate(e.macro); err != nil {
		return nil, err
	}
	years := cfg.Años()
	results := make([]AnnualProjection, len(years))
	g, ctx := errgroup.WithContext(ctx)
	for i, year := range years {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			annual, err := e.ProjectYear(year, volumesByYear[year], cfg)
			if err != nil {
				return err
			}
			results[i] = annual
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
