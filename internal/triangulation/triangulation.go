// Package triangulation cross-checks the three statements produced for one
// period. It is a pure judgment: it never mutates upstream outputs and its
// findings are reported, never fatal.
package triangulation

import (
	"fmt"
	"math"

	"github.com/cimera-fin/cimera/internal/statements"
)

// tolerancia is the agreement threshold in pesos.
const tolerancia = 1.0

// Mismatch kinds.
const (
	KindBalance  = "balance"
	KindUtilidad = "utilidad"
	KindCaja     = "caja"
)

// Mismatch is one typed disagreement found between statements.
type Mismatch struct {
	Tipo       string  `json:"tipo"`
	Detalle    string  `json:"detalle"`
	Esperado   float64 `json:"esperado"`
	Obtenido   float64 `json:"obtenido"`
	Diferencia float64 `json:"diferencia"`
}

// Checks is the boolean breakdown per verification performed.
type Checks struct {
	Balance  bool `json:"balance"`
	Utilidad bool `json:"utilidad"`
	Caja     bool `json:"caja"`
}

// Result is the verdict of one triangulation run.
type Result struct {
	Valido         bool       `json:"valido"`
	Errores        []Mismatch `json:"errores"`
	Verificaciones Checks     `json:"verificaciones"`
}

// Validate runs every check and accumulates every mismatch found; it never
// short-circuits, so one run reports all problems at once. The checks:
// the balance sheet's own accounting identity, agreement between the income
// statement's net income and the one the balance sheet rolled forward, and
// agreement between the cash flow's ending cash and the balance sheet's
// reported cash.
func Validate(utilidadNeta float64, bs statements.BalanceSheet, cf statements.CashFlowStatement) Result {
	res := Result{Verificaciones: Checks{Balance: true, Utilidad: true, Caja: true}}

	if !bs.EcuacionPatrimonial.Valido {
		res.Verificaciones.Balance = false
		res.Errores = append(res.Errores, Mismatch{
			Tipo:       KindBalance,
			Detalle:    fmt.Sprintf("ecuacion patrimonial no cuadra en %d-%02d", bs.Año, bs.Mes),
			Esperado:   bs.TotalPasivos + bs.TotalPatrimonio,
			Obtenido:   bs.TotalActivos,
			Diferencia: bs.EcuacionPatrimonial.Diferencia,
		})
	}

	if diff := utilidadNeta - bs.UtilidadDelPeriodo; math.Abs(diff) >= tolerancia {
		res.Verificaciones.Utilidad = false
		res.Errores = append(res.Errores, Mismatch{
			Tipo:       KindUtilidad,
			Detalle:    "utilidad neta del ERI difiere de la trasladada al balance",
			Esperado:   utilidadNeta,
			Obtenido:   bs.UtilidadDelPeriodo,
			Diferencia: diff,
		})
	}

	if !cf.ConciliaConBalance {
		res.Verificaciones.Caja = false
		res.Errores = append(res.Errores, Mismatch{
			Tipo:       KindCaja,
			Detalle:    "el flujo de caja no concilia internamente",
			Esperado:   cf.CajaInicial + cf.FlujoNeto,
			Obtenido:   cf.CajaFinal,
			Diferencia: cf.CajaFinal - (cf.CajaInicial + cf.FlujoNeto),
		})
	}
	if diff := cf.CajaFinal - bs.Caja; math.Abs(diff) >= tolerancia {
		res.Verificaciones.Caja = false
		res.Errores = append(res.Errores, Mismatch{
			Tipo:       KindCaja,
			Detalle:    "caja final del flujo difiere de la caja reportada en balance",
			Esperado:   cf.CajaFinal,
			Obtenido:   bs.Caja,
			Diferencia: diff,
		})
	}

	res.Valido = res.Verificaciones.Balance && res.Verificaciones.Utilidad && res.Verificaciones.Caja
	return res
}
