package catalog

import (
	"errors"
	"fmt"
)

// Kind classifies a catalog item by its role in the model.
type Kind string

const (
	KindIngreso       Kind = "ingreso"
	KindCostoVariable Kind = "costo_variable"
	KindGastoFijo     Kind = "gasto_fijo"
	KindImpuesto      Kind = "impuesto"
	KindCapex         Kind = "capex"
)

// Frequency describes how often an item's value applies.
type Frequency string

const (
	FreqPorTransaccion Frequency = "por_transaccion"
	FreqPorDocumento   Frequency = "por_documento"
	FreqMensual        Frequency = "mensual"
	FreqAnual          Frequency = "anual"
	FreqUnica          Frequency = "unica"
)

var (
	// ErrDuplicateCode indicates two items share the same code.
	ErrDuplicateCode = errors.New("catalogo: codigo duplicado")
	// ErrBrokenLink indicates vinculadoA references a missing code.
	ErrBrokenLink = errors.New("catalogo: vinculo roto")
	// ErrRateNotFraction indicates a percentage item stored a whole number.
	ErrRateNotFraction = errors.New("catalogo: porcentaje debe ser fraccion")
)

// Item is a priced concept from the reference catalog. Items are timeless
// price/policy facts; volumes and dates are applied downstream.
type Item struct {
	Codigo       string    `json:"codigo" yaml:"codigo"`
	Nombre       string    `json:"nombre" yaml:"nombre"`
	Tipo         Kind      `json:"tipo" yaml:"tipo"`
	Categoria    string    `json:"categoria" yaml:"categoria"`
	Subcategoria string    `json:"subcategoria,omitempty" yaml:"subcategoria,omitempty"`
	Valor        float64   `json:"valor" yaml:"valor"`
	Frecuencia   Frequency `json:"frecuencia" yaml:"frecuencia"`
	VinculadoA   string    `json:"vinculadoA,omitempty" yaml:"vinculadoA,omitempty"`
	EsPorcentaje bool      `json:"esPorcentaje,omitempty" yaml:"esPorcentaje,omitempty"`
	AplicaIVA    bool      `json:"aplicaIVA,omitempty" yaml:"aplicaIVA,omitempty"`
	EsNomina     bool      `json:"esNomina,omitempty" yaml:"esNomina,omitempty"`
	EsCAC        bool      `json:"esCAC,omitempty" yaml:"esCAC,omitempty"`
	GeneraEscrow bool      `json:"generaEscrow,omitempty" yaml:"generaEscrow,omitempty"`
	Activo       bool      `json:"activo" yaml:"activo"`
}

// Transaccional reports whether the item's volume counts toward the
// transactional total used for gateway and notification costs.
func (i Item) Transaccional() bool {
	return i.Frecuencia == FreqPorTransaccion || i.Frecuencia == FreqPorDocumento
}

// Snapshot is an immutable, indexed view of the catalog. Projection runs hold
// one snapshot for their whole lifetime; edits produce a new snapshot.
type Snapshot struct {
	items  []Item
	byCode map[string]int
	// revenue code -> index of the cost item linked to it
	linkedCost map[string]int
}

// NewSnapshot indexes the given items and verifies the catalog invariants:
// unique codes, resolvable links, and percentage rates stored as fractions.
func NewSnapshot(items []Item) (*Snapshot, error) {
	s := &Snapshot{
		items:      append([]Item(nil), items...),
		byCode:     make(map[string]int, len(items)),
		linkedCost: make(map[string]int),
	}
	for idx, item := range s.items {
		if item.Codigo == "" {
			return nil, fmt.Errorf("catalogo: item %d sin codigo", idx)
		}
		if _, ok := s.byCode[item.Codigo]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, item.Codigo)
		}
		s.byCode[item.Codigo] = idx
		if item.EsPorcentaje && (item.Valor < 0 || item.Valor >= 1) {
			return nil, fmt.Errorf("%w: %s valor %v", ErrRateNotFraction, item.Codigo, item.Valor)
		}
	}
	for idx, item := range s.items {
		if item.VinculadoA == "" {
			continue
		}
		if _, ok := s.byCode[item.VinculadoA]; !ok {
			return nil, fmt.Errorf("%w: %s -> %s", ErrBrokenLink, item.Codigo, item.VinculadoA)
		}
		if item.Tipo == KindCostoVariable {
			s.linkedCost[item.VinculadoA] = idx
		}
	}
	return s, nil
}

// ItemByCode resolves a single item. The boolean follows the comma-ok idiom;
// a miss is not an error because volumes may reference retired items.
func (s *Snapshot) ItemByCode(code string) (Item, bool) {
	idx, ok := s.byCode[code]
	if !ok {
		return Item{}, false
	}
	return s.items[idx], true
}

// LinkedCost resolves the cost item whose vinculadoA points at the given
// revenue code.
func (s *Snapshot) LinkedCost(revenueCode string) (Item, bool) {
	idx, ok := s.linkedCost[revenueCode]
	if !ok {
		return Item{}, false
	}
	return s.items[idx], true
}

// TotalPayroll sums the active payroll-flagged fixed items, loaded by the
// jurisdiction's benefits multiplier.
func (s *Snapshot) TotalPayroll(benefitsFactor float64) float64 {
	var total float64
	for _, item := range s.items {
		if item.Activo && item.Tipo == KindGastoFijo && item.EsNomina {
			total += item.Valor
		}
	}
	return total * benefitsFactor
}

// ItemsByKind returns the active items of one kind, in catalog order.
func (s *Snapshot) ItemsByKind(kind Kind) []Item {
	out := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		if item.Activo && item.Tipo == kind {
			out = append(out, item)
		}
	}
	return out
}

// Items returns a copy of every item, active or not.
func (s *Snapshot) Items() []Item {
	return append([]Item(nil), s.items...)
}

// Len reports the number of items in the snapshot.
func (s *Snapshot) Len() int { return len(s.items) }
