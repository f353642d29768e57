package pricing

import (
	"github.com/cimera-fin/cimera/internal/catalog"
	"github.com/cimera-fin/cimera/internal/macro"
)

// GatewayRates carries the per-transaction payment channel unit costs
// resolved from the catalog.
type GatewayRates struct {
	Digital  float64
	Efectivo float64
	SMS      float64
}

// Blended returns the channel-weighted gateway cost for one transaction.
func (g GatewayRates) Blended(digitalMix float64) float64 {
	return digitalMix*g.Digital + (1-digitalMix)*g.Efectivo
}

// ItemEconomics is the contribution view of one revenue item at a volume.
type ItemEconomics struct {
	Codigo             string  `json:"codigo"`
	Volumen            int64   `json:"volumen"`
	IngresoTotal       float64 `json:"ingresoTotal"`
	PagoProfesional    float64 `json:"pagoProfesional"`
	CostoPasarela      float64 `json:"pasarela"`
	CostoSMS           float64 `json:"sms"`
	CostoTotal         float64 `json:"costoTotal"`
	MargenContribucion float64 `json:"margenContribucion"`
	MargenPct          float64 `json:"margenPct"`
}

// UnitEconomics prices one revenue item at a volume for a target year.
// Revenue uses the indexed price; the gateway cost blends the digital and
// cash channel unit costs by the configured mix; SMS applies only to the cash
// share. The linked cost, when present and percentage-flagged, contributes
// the professional payout. Zero volume yields an all-zero result.
func UnitEconomics(item catalog.Item, linked catalog.Item, hasLinked bool, volume int64, baseYear, year int, table *macro.Table, digitalMix float64, gw GatewayRates) ItemEconomics {
	out := ItemEconomics{Codigo: item.Codigo, Volumen: volume}
	if volume <= 0 {
		return out
	}
	vol := float64(volume)
	price := IndexedPrice(item.Valor, baseYear, year, table)
	out.IngresoTotal = Round(price * vol)

	if hasLinked && linked.EsPorcentaje {
		out.PagoProfesional = Round(out.IngresoTotal * linked.Valor)
	}
	if item.Transaccional() {
		out.CostoPasarela = Round(vol * gw.Blended(digitalMix))
		out.CostoSMS = Round(vol * (1 - digitalMix) * gw.SMS)
	}
	out.CostoTotal = out.PagoProfesional + out.CostoPasarela + out.CostoSMS
	out.MargenContribucion = out.IngresoTotal - out.CostoTotal
	if out.IngresoTotal != 0 {
		out.MargenPct = out.MargenContribucion / out.IngresoTotal
	}
	return out
}
