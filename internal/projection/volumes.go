package projection

import (
	"math"

	"github.com/cimera-fin/cimera/internal/catalog"
	"github.com/cimera-fin/cimera/internal/model"
)

// GenerateVolumes expands a first-year volume map across the whole scenario.
// Each later year compounds the target annual growth; recurring items
// (mensual frequency, e.g. subscriptions) additionally decay month over month
// by the configured churn. Quantities stay non-negative integers.
func (e *Engine) GenerateVolumes(base model.VolumeMap, cfg model.Configuration) map[int]model.VolumeMap {
	out := make(map[int]model.VolumeMap, cfg.AñoFin-cfg.AñoInicio+1)
	for idx, year := range cfg.Años() {
		growth := math.Pow(1+cfg.CrecimientoAnual, float64(idx))
		yearMap := make(model.VolumeMap, len(base))
		for code, vols := range base {
			item, ok := e.snap.ItemByCode(code)
			recurrente := ok && item.Frecuencia == catalog.FreqMensual
			porMes := make(map[int]int64, 12)
			for month := 1; month <= 12; month++ {
				qty := float64(vols.For(month)) * growth
				if recurrente && cfg.ChurnMensual > 0 {
					qty *= math.Pow(1-cfg.ChurnMensual, float64(month-1))
				}
				if qty < 0 {
					qty = 0
				}
				porMes[month] = int64(math.Round(qty))
			}
			yearMap[code] = model.MonthlyVolumes{PorMes: porMes, Explicit: true}
		}
		out[year] = yearMap
	}
	return out
}
