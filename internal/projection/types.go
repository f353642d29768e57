// Package projection turns a catalog snapshot, volume assumptions, and macro
// parameters into monthly and annual P&L-shaped figure sets. Every returned
// field is rounded to whole pesos before leaving the engine; annual totals
// sum the already-rounded months.
package projection

// MonthlyProjection is the full derived figure set for one (year, month).
// Field names follow the serialized shapes the reporting UI consumes.
type MonthlyProjection struct {
	Año int `json:"año"`
	Mes int `json:"mes"`

	IngresosBrutos       float64            `json:"ingresosBrutos"`
	IVAGenerado          float64            `json:"ivaGenerado"`
	IngresosNetos        float64            `json:"ingresosNetos"`
	IngresosPorCategoria map[string]float64 `json:"ingresosPorCategoria"`

	PagoProfesionales    float64 `json:"pagoProfesionales"`
	CostoPasarela        float64 `json:"costoPasarela"`
	CostoSMS             float64 `json:"costoSMS"`
	CostoInfraestructura float64 `json:"costoInfraestructura"`
	CostoVerificacion    float64 `json:"costoVerificacion"`
	OtrosCostosDirectos  float64 `json:"otrosCostosDirectos"`
	CostosDirectos       float64 `json:"costosDirectos"`

	GastoNomina         float64 `json:"gastoNomina"`
	GastoMarketing      float64 `json:"gastoMarketing"`
	GastoAdministracion float64 `json:"gastoAdministracion"`
	GastoTecnologia     float64 `json:"gastoTecnologia"`
	GastosOperativos    float64 `json:"gastosOperativos"`

	Depreciacion float64 `json:"depreciacion"`
	Amortizacion float64 `json:"amortizacion"`

	EBITDA                 float64 `json:"ebitda"`
	UtilidadOperativa      float64 `json:"utilidadOperativa"`
	ICA                    float64 `json:"ica"`
	UtilidadAntesImpuestos float64 `json:"utilidadAntesImpuestos"`
	ImpuestoRenta          float64 `json:"impuestoRenta"`
	UtilidadNeta           float64 `json:"utilidadNeta"`

	EscrowGenerado       float64 `json:"escrowGenerado"`
	VolumenTransacciones int64   `json:"volumenTransacciones"`
}

// add accumulates another month into the receiver, field by field. Totals are
// never recomputed from scratch; they are exactly the sum of the months.
func (p *MonthlyProjection) add(m MonthlyProjection) {
	p.IngresosBrutos += m.IngresosBrutos
	p.IVAGenerado += m.IVAGenerado
	p.IngresosNetos += m.IngresosNetos
	if p.IngresosPorCategoria == nil {
		p.IngresosPorCategoria = make(map[string]float64)
	}
	for categoria, monto := range m.IngresosPorCategoria {
		p.IngresosPorCategoria[categoria] += monto
	}
	p.PagoProfesionales += m.PagoProfesionales
	p.CostoPasarela += m.CostoPasarela
	p.CostoSMS += m.CostoSMS
	p.CostoInfraestructura += m.CostoInfraestructura
	p.CostoVerificacion += m.CostoVerificacion
	p.OtrosCostosDirectos += m.OtrosCostosDirectos
	p.CostosDirectos += m.CostosDirectos
	p.GastoNomina += m.GastoNomina
	p.GastoMarketing += m.GastoMarketing
	p.GastoAdministracion += m.GastoAdministracion
	p.GastoTecnologia += m.GastoTecnologia
	p.GastosOperativos += m.GastosOperativos
	p.Depreciacion += m.Depreciacion
	p.Amortizacion += m.Amortizacion
	p.EBITDA += m.EBITDA
	p.UtilidadOperativa += m.UtilidadOperativa
	p.ICA += m.ICA
	p.UtilidadAntesImpuestos += m.UtilidadAntesImpuestos
	p.ImpuestoRenta += m.ImpuestoRenta
	p.UtilidadNeta += m.UtilidadNeta
	p.EscrowGenerado += m.EscrowGenerado
	p.VolumenTransacciones += m.VolumenTransacciones
}

// AnnualProjection bundles the twelve months of a year with their field-wise
// totals.
type AnnualProjection struct {
	Año     int                   `json:"año"`
	Meses   [12]MonthlyProjection `json:"meses"`
	Totales MonthlyProjection     `json:"totales"`
}
