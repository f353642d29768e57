package catalog

// Canonical codes referenced by the projection engine when resolving unit
// costs and policy rates from a snapshot.
const (
	CodePasarelaDigital  = "PAS-DIG"
	CodePasarelaEfectivo = "PAS-EFE"
	CodeSMS              = "SMS-NOT"
	CodeVerificacion     = "VER-KYC"
	CodeMarketing        = "MKT-DIG"
	CodeIVA              = "IVA"
	CodeICA              = "ICA"
	CodeRetefuente       = "RET-FTE"
	CodeGMF              = "GMF"
	CodeRenta            = "RENTA"
)

// Seed returns the built-in catalog for the Colombian marketplace model.
// Values are COP except percentage items, which store fractions.
func Seed() (*Snapshot, error) {
	return NewSnapshot([]Item{
		// Ingresos
		{Codigo: "SRV-EST", Nombre: "Servicio estandar", Tipo: KindIngreso, Categoria: "servicios", Valor: 150000, Frecuencia: FreqPorTransaccion, AplicaIVA: true, GeneraEscrow: true, Activo: true},
		{Codigo: "SRV-PRE", Nombre: "Servicio premium", Tipo: KindIngreso, Categoria: "servicios", Valor: 250000, Frecuencia: FreqPorTransaccion, AplicaIVA: true, GeneraEscrow: true, Activo: true},
		{Codigo: "SUS-PRO", Nombre: "Suscripcion profesional", Tipo: KindIngreso, Categoria: "suscripciones", Valor: 45000, Frecuencia: FreqMensual, AplicaIVA: true, Activo: true},
		{Codigo: "CERT-DOC", Nombre: "Certificado de servicio", Tipo: KindIngreso, Categoria: "documentos", Valor: 12000, Frecuencia: FreqPorDocumento, AplicaIVA: true, Activo: true},

		// Costos variables
		{Codigo: "PAGO-PROF", Nombre: "Pago profesional estandar", Tipo: KindCostoVariable, Categoria: "pagos_profesionales", Valor: 0.30, Frecuencia: FreqPorTransaccion, VinculadoA: "SRV-EST", EsPorcentaje: true, Activo: true},
		{Codigo: "PAGO-PROF-PRE", Nombre: "Pago profesional premium", Tipo: KindCostoVariable, Categoria: "pagos_profesionales", Valor: 0.30, Frecuencia: FreqPorTransaccion, VinculadoA: "SRV-PRE", EsPorcentaje: true, Activo: true},
		{Codigo: CodePasarelaDigital, Nombre: "Pasarela canal digital", Tipo: KindCostoVariable, Categoria: "pasarela", Valor: 6500, Frecuencia: FreqPorTransaccion, Activo: true},
		{Codigo: CodePasarelaEfectivo, Nombre: "Pasarela canal efectivo", Tipo: KindCostoVariable, Categoria: "pasarela", Valor: 7200, Frecuencia: FreqPorTransaccion, Activo: true},
		{Codigo: CodeSMS, Nombre: "Notificacion SMS efectivo", Tipo: KindCostoVariable, Categoria: "notificaciones", Valor: 350, Frecuencia: FreqPorTransaccion, Activo: true},
		{Codigo: CodeVerificacion, Nombre: "Verificacion de identidad", Tipo: KindCostoVariable, Categoria: "verificacion", Valor: 800, Frecuencia: FreqPorTransaccion, GeneraEscrow: true, Activo: true},
		{Codigo: "INF-NUBE", Nombre: "Infraestructura en nube", Tipo: KindCostoVariable, Categoria: "infraestructura", Valor: 120, Frecuencia: FreqPorTransaccion, Activo: true},

		// Gastos fijos
		{Codigo: "NOM-ING", Nombre: "Nomina ingenieria", Tipo: KindGastoFijo, Categoria: "nomina", Valor: 12000000, Frecuencia: FreqMensual, EsNomina: true, Activo: true},
		{Codigo: "NOM-OPS", Nombre: "Nomina operaciones", Tipo: KindGastoFijo, Categoria: "nomina", Valor: 8000000, Frecuencia: FreqMensual, EsNomina: true, Activo: true},
		{Codigo: "NOM-ADM", Nombre: "Nomina administrativa", Tipo: KindGastoFijo, Categoria: "nomina", Valor: 5000000, Frecuencia: FreqMensual, EsNomina: true, Activo: true},
		{Codigo: CodeMarketing, Nombre: "Marketing digital", Tipo: KindGastoFijo, Categoria: "marketing", Valor: 0.08, Frecuencia: FreqMensual, EsPorcentaje: true, EsCAC: true, Activo: true},
		{Codigo: "ADM-GRL", Nombre: "Gastos administrativos", Tipo: KindGastoFijo, Categoria: "administracion", Valor: 8000000, Frecuencia: FreqMensual, Activo: true},
		{Codigo: "ARR-OFI", Nombre: "Arriendo oficina", Tipo: KindGastoFijo, Categoria: "administracion", Valor: 4200000, Frecuencia: FreqMensual, Activo: true},
		{Codigo: "TEC-SAAS", Nombre: "Licencias y SaaS", Tipo: KindGastoFijo, Categoria: "tecnologia", Valor: 3500000, Frecuencia: FreqMensual, Activo: true},

		// Impuestos
		{Codigo: CodeIVA, Nombre: "IVA", Tipo: KindImpuesto, Categoria: "impuestos", Valor: 0.19, Frecuencia: FreqMensual, EsPorcentaje: true, Activo: true},
		{Codigo: CodeICA, Nombre: "ICA Bogota", Tipo: KindImpuesto, Categoria: "impuestos", Valor: 0.00966, Frecuencia: FreqMensual, EsPorcentaje: true, Activo: true},
		{Codigo: CodeRetefuente, Nombre: "Retencion en la fuente servicios", Tipo: KindImpuesto, Categoria: "impuestos", Valor: 0.11, Frecuencia: FreqMensual, EsPorcentaje: true, Activo: true},
		{Codigo: CodeGMF, Nombre: "Gravamen movimientos financieros", Tipo: KindImpuesto, Categoria: "impuestos", Valor: 0.004, Frecuencia: FreqMensual, EsPorcentaje: true, Activo: true},
		{Codigo: CodeRenta, Nombre: "Impuesto de renta", Tipo: KindImpuesto, Categoria: "impuestos", Valor: 0.35, Frecuencia: FreqAnual, EsPorcentaje: true, Activo: true},

		// Capex
		{Codigo: "CAPEX-DEV", Nombre: "Desarrollo capitalizado", Tipo: KindCapex, Categoria: "intangibles", Valor: 60000000, Frecuencia: FreqAnual, Activo: true},
	})
}
