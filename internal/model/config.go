// Package model defines the caller-supplied inputs of a projection run: the
// model configuration and the volume assumptions. Both are validated at the
// boundary; the engine assumes they already hold their invariants.
package model

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/cimera-fin/cimera/internal/macro"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrInvalidConfiguration wraps every configuration rejection so callers can
// distinguish fatal boundary errors from projection output.
var ErrInvalidConfiguration = errors.New("modelo: configuracion invalida")

// Configuration drives one projection scenario.
type Configuration struct {
	AñoInicio      int     `json:"añoInicio" yaml:"añoInicio" validate:"required,min=2000,max=2100"`
	AñoFin         int     `json:"añoFin" yaml:"añoFin" validate:"required,min=2000,max=2100"`
	AñoBasePrecios int     `json:"añoBasePrecios" yaml:"añoBasePrecios" validate:"required,min=2000,max=2100"`
	CapitalInicial float64 `json:"capitalInicial" yaml:"capitalInicial" validate:"gte=0"`

	CrecimientoAnual float64 `json:"crecimientoAnual" yaml:"crecimientoAnual" validate:"gte=0,lte=5"`
	MezclaDigital    float64 `json:"mezclaDigital" yaml:"mezclaDigital" validate:"gte=0,lte=1"`
	ChurnMensual     float64 `json:"churnMensual" yaml:"churnMensual" validate:"gte=0,lte=1"`

	DiasCartera     float64 `json:"diasCartera" yaml:"diasCartera" validate:"gte=0,lte=180"`
	DiasProveedores float64 `json:"diasProveedores" yaml:"diasProveedores" validate:"gte=0,lte=180"`
	DiasEscrow      float64 `json:"diasEscrow" yaml:"diasEscrow" validate:"gte=0,lte=60"`

	Empleados          int     `json:"empleados" yaml:"empleados" validate:"gte=0"`
	SalarioPromedio    float64 `json:"salarioPromedio" yaml:"salarioPromedio" validate:"gte=0"`
	FactorPrestacional float64 `json:"factorPrestacional" yaml:"factorPrestacional" validate:"gte=1,lte=3"`

	DepreciacionMensual float64 `json:"depreciacionMensual" yaml:"depreciacionMensual" validate:"gte=0"`
	AmortizacionMensual float64 `json:"amortizacionMensual" yaml:"amortizacionMensual" validate:"gte=0"`
}

// Validate enforces the structural rules plus the cross-field invariants the
// tags cannot express, and confirms macro coverage for the year range.
// Configuration errors are fatal and must be surfaced before any projection.
func (c Configuration) Validate(table *macro.Table) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	if c.AñoInicio > c.AñoFin {
		return fmt.Errorf("%w: añoInicio %d posterior a añoFin %d", ErrInvalidConfiguration, c.AñoInicio, c.AñoFin)
	}
	if table == nil {
		return fmt.Errorf("%w: tabla macro no configurada", ErrInvalidConfiguration)
	}
	if err := table.Covers(c.AñoInicio, c.AñoFin); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return nil
}

// Años returns the inclusive year range of the scenario.
func (c Configuration) Años() []int {
	years := make([]int, 0, c.AñoFin-c.AñoInicio+1)
	for y := c.AñoInicio; y <= c.AñoFin; y++ {
		years = append(years, y)
	}
	return years
}

// DefaultConfiguration returns the scenario the CLI starts from.
func DefaultConfiguration() Configuration {
	return Configuration{
		AñoInicio:           2025,
		AñoFin:              2027,
		AñoBasePrecios:      2025,
		CapitalInicial:      500000000,
		CrecimientoAnual:    0.35,
		MezclaDigital:       0.70,
		ChurnMensual:        0.03,
		DiasCartera:         15,
		DiasProveedores:     30,
		DiasEscrow:          7,
		Empleados:           5,
		SalarioPromedio:     5000000,
		FactorPrestacional:  1.52,
		DepreciacionMensual: 2500000,
		AmortizacionMensual: 1200000,
	}
}
