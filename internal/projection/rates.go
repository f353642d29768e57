package projection

import (
	"errors"
	"fmt"

	"github.com/cimera-fin/cimera/internal/catalog"
	"github.com/cimera-fin/cimera/internal/pricing"
)

// ErrRateMissing indicates the snapshot lacks one of the canonical rate
// items the engine prices with.
var ErrRateMissing = errors.New("proyeccion: tarifa no encontrada en catalogo")

// Rates is the consolidated, explicitly injected constants record. Every
// formula receives its rates from here instead of importing ambient
// constants, so the engine stays pure and independently testable.
type Rates struct {
	Pasarela            pricing.GatewayRates
	CostoVerificacion   float64
	TasaICA             float64
	TasaRetefuente      float64
	PorcentajeMarketing float64
	TasaReservaLegal    float64
	FactorPrestacional  float64
}

// ResolveRates builds the rate record from a catalog snapshot. Missing
// canonical codes are configuration errors.
func ResolveRates(snap *catalog.Snapshot) (Rates, error) {
	lookup := func(code string) (float64, error) {
		item, ok := snap.ItemByCode(code)
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrRateMissing, code)
		}
		return item.Valor, nil
	}

	var r Rates
	var err error
	if r.Pasarela.Digital, err = lookup(catalog.CodePasarelaDigital); err != nil {
		return Rates{}, err
	}
	if r.Pasarela.Efectivo, err = lookup(catalog.CodePasarelaEfectivo); err != nil {
		return Rates{}, err
	}
	if r.Pasarela.SMS, err = lookup(catalog.CodeSMS); err != nil {
		return Rates{}, err
	}
	if r.CostoVerificacion, err = lookup(catalog.CodeVerificacion); err != nil {
		return Rates{}, err
	}
	if r.TasaICA, err = lookup(catalog.CodeICA); err != nil {
		return Rates{}, err
	}
	if r.TasaRetefuente, err = lookup(catalog.CodeRetefuente); err != nil {
		return Rates{}, err
	}
	if r.PorcentajeMarketing, err = lookup(catalog.CodeMarketing); err != nil {
		return Rates{}, err
	}
	r.TasaReservaLegal = 0.10
	r.FactorPrestacional = 1.52
	return r, nil
}
