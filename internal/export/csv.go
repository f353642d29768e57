// Package export serializes projections and statements into spreadsheets.
package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cimera-fin/cimera/internal/projection"
	"github.com/cimera-fin/cimera/internal/statements"
)

const (
	csvFlushEvery = 200
	csvBufferSize = 32 * 1024
)

// printer renders COP amounts with es-CO digit grouping for comment rows.
var printer = message.NewPrinter(language.MustParse("es-CO"))

type csvStreamer struct {
	buf          *bufio.Writer
	csv          *csv.Writer
	flushEvery   int
	pendingLines int
}

func newCSVStreamer(w io.Writer) *csvStreamer {
	buf := bufio.NewWriterSize(w, csvBufferSize)
	writer := csv.NewWriter(buf)
	writer.UseCRLF = true
	return &csvStreamer{buf: buf, csv: writer, flushEvery: csvFlushEvery}
}

func (s *csvStreamer) writeComment(line string) error {
	if s == nil || s.buf == nil {
		return fmt.Errorf("export: csv streamer no inicializado")
	}
	if !strings.HasSuffix(line, "\r\n") {
		line = strings.TrimSuffix(line, "\n")
		line += "\r\n"
	}
	_, err := s.buf.WriteString(line)
	return err
}

func (s *csvStreamer) writeRow(row []string) error {
	if s == nil || s.csv == nil {
		return fmt.Errorf("export: csv streamer no inicializado")
	}
	if err := s.csv.Write(row); err != nil {
		return err
	}
	s.pendingLines++
	if s.flushEvery > 0 && s.pendingLines >= s.flushEvery {
		return s.flush()
	}
	return nil
}

func (s *csvStreamer) flush() error {
	s.csv.Flush()
	if err := s.csv.Error(); err != nil {
		return err
	}
	s.pendingLines = 0
	return s.buf.Flush()
}

func peso(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}

// WriteAnnual streams one annual projection as CSV: a commented summary
// header, the twelve months, and the totals row.
func WriteAnnual(w io.Writer, annual projection.AnnualProjection) error {
	s := newCSVStreamer(w)
	if err := s.writeComment(printer.Sprintf("# Proyeccion %d: ingresos %d, EBITDA %d, utilidad neta %d",
		annual.Año, int64(annual.Totales.IngresosBrutos), int64(annual.Totales.EBITDA), int64(annual.Totales.UtilidadNeta))); err != nil {
		return err
	}
	header := []string{
		"año", "mes", "ingresosBrutos", "ivaGenerado", "ingresosNetos",
		"pagoProfesionales", "costoPasarela", "costoSMS", "costoInfraestructura",
		"costoVerificacion", "costosDirectos", "gastoNomina", "gastoMarketing",
		"gastoAdministracion", "gastoTecnologia", "gastosOperativos",
		"ebitda", "utilidadOperativa", "ica", "impuestoRenta", "utilidadNeta",
	}
	if err := s.writeRow(header); err != nil {
		return err
	}
	row := func(label string, m projection.MonthlyProjection) []string {
		return []string{
			strconv.Itoa(m.Año), label,
			peso(m.IngresosBrutos), peso(m.IVAGenerado), peso(m.IngresosNetos),
			peso(m.PagoProfesionales), peso(m.CostoPasarela), peso(m.CostoSMS),
			peso(m.CostoInfraestructura), peso(m.CostoVerificacion), peso(m.CostosDirectos),
			peso(m.GastoNomina), peso(m.GastoMarketing), peso(m.GastoAdministracion),
			peso(m.GastoTecnologia), peso(m.GastosOperativos),
			peso(m.EBITDA), peso(m.UtilidadOperativa), peso(m.ICA),
			peso(m.ImpuestoRenta), peso(m.UtilidadNeta),
		}
	}
	for _, mes := range annual.Meses {
		if err := s.writeRow(row(strconv.Itoa(mes.Mes), mes)); err != nil {
			return err
		}
	}
	if err := s.writeRow(row("total", annual.Totales)); err != nil {
		return err
	}
	return s.flush()
}

// WriteStatements streams the articulated monthly statements: collections,
// flows, ending cash, and the balance identity per month.
func WriteStatements(w io.Writer, año int, months []statements.MonthlyStatements) error {
	s := newCSVStreamer(w)
	if err := s.writeComment(fmt.Sprintf("# Estados financieros articulados %d", año)); err != nil {
		return err
	}
	header := []string{
		"año", "mes", "recaudoDigital", "recaudoEfectivo", "recaudoIVA",
		"flujoOperativo", "inversionCapex", "flujoNeto", "cajaFinal",
		"totalActivos", "totalPasivos", "totalPatrimonio", "ecuacionValida",
	}
	if err := s.writeRow(header); err != nil {
		return err
	}
	for _, m := range months {
		row := []string{
			strconv.Itoa(m.Flujo.Año), strconv.Itoa(m.Flujo.Mes),
			peso(m.Flujo.RecaudoDigital), peso(m.Flujo.RecaudoEfectivo), peso(m.Flujo.RecaudoIVA),
			peso(m.Flujo.FlujoOperativo), peso(m.Flujo.InversionCapex), peso(m.Flujo.FlujoNeto),
			peso(m.Flujo.CajaFinal),
			peso(m.Balance.TotalActivos), peso(m.Balance.TotalPasivos), peso(m.Balance.TotalPatrimonio),
			strconv.FormatBool(m.Balance.EcuacionPatrimonial.Valido),
		}
		if err := s.writeRow(row); err != nil {
			return err
		}
	}
	return s.flush()
}
