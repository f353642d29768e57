// Package macro holds the year-indexed macroeconomic assumptions the engine
// prices against. Lookups over the configured year range must be total; a
// missing year is a configuration error, never a silent default.
package macro

import (
	"errors"
	"fmt"
)

// ErrYearMissing indicates a requested year has no parameters loaded.
var ErrYearMissing = errors.New("macro: año sin parametros")

// Params captures one fiscal year's macro assumptions. Rates are fractions.
type Params struct {
	Año           int     `json:"año" yaml:"año"`
	Inflacion     float64 `json:"inflacion" yaml:"inflacion"`
	TRM           float64 `json:"trm" yaml:"trm"`
	TasaRenta     float64 `json:"tasaRenta" yaml:"tasaRenta"`
	TasaIVA       float64 `json:"tasaIVA" yaml:"tasaIVA"`
	TasaInteres   float64 `json:"tasaInteres" yaml:"tasaInteres"`
	SalarioMinimo float64 `json:"salarioMinimo" yaml:"salarioMinimo"`
	UVT           float64 `json:"uvt" yaml:"uvt"`
}

// Table indexes parameters by year.
type Table struct {
	byYear map[int]Params
}

// NewTable builds a table from the given records. Later duplicates win.
func NewTable(params []Params) *Table {
	t := &Table{byYear: make(map[int]Params, len(params))}
	for _, p := range params {
		t.byYear[p.Año] = p
	}
	return t
}

// ForYear returns the parameters for a year or ErrYearMissing.
func (t *Table) ForYear(year int) (Params, error) {
	p, ok := t.byYear[year]
	if !ok {
		return Params{}, fmt.Errorf("%w: %d", ErrYearMissing, year)
	}
	return p, nil
}

// Has reports whether the year is loaded. Used by indexation, which treats a
// gap as "no inflation that year" instead of failing.
func (t *Table) Has(year int) bool {
	_, ok := t.byYear[year]
	return ok
}

// Covers verifies total coverage of [start, end] and returns the first
// missing year as an error.
func (t *Table) Covers(start, end int) error {
	for y := start; y <= end; y++ {
		if !t.Has(y) {
			return fmt.Errorf("%w: %d", ErrYearMissing, y)
		}
	}
	return nil
}

// DefaultTable returns the seeded Colombian assumptions for 2024-2030.
func DefaultTable() *Table {
	return NewTable([]Params{
		{Año: 2024, Inflacion: 0.092, TRM: 4050, TasaRenta: 0.35, TasaIVA: 0.19, TasaInteres: 0.1275, SalarioMinimo: 1300000, UVT: 47065},
		{Año: 2025, Inflacion: 0.052, TRM: 4250, TasaRenta: 0.35, TasaIVA: 0.19, TasaInteres: 0.0950, SalarioMinimo: 1423500, UVT: 49799},
		{Año: 2026, Inflacion: 0.041, TRM: 4300, TasaRenta: 0.35, TasaIVA: 0.19, TasaInteres: 0.0825, SalarioMinimo: 1550000, UVT: 52200},
		{Año: 2027, Inflacion: 0.035, TRM: 4350, TasaRenta: 0.35, TasaIVA: 0.19, TasaInteres: 0.0750, SalarioMinimo: 1660000, UVT: 54500},
		{Año: 2028, Inflacion: 0.032, TRM: 4400, TasaRenta: 0.35, TasaIVA: 0.19, TasaInteres: 0.0700, SalarioMinimo: 1770000, UVT: 56700},
		{Año: 2029, Inflacion: 0.030, TRM: 4450, TasaRenta: 0.35, TasaIVA: 0.19, TasaInteres: 0.0675, SalarioMinimo: 1880000, UVT: 58900},
		{Año: 2030, Inflacion: 0.030, TRM: 4500, TasaRenta: 0.35, TasaIVA: 0.19, TasaInteres: 0.0650, SalarioMinimo: 1990000, UVT: 61100},
	})
}
