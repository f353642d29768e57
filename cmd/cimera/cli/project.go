package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cimera-fin/cimera/internal/export"
	"github.com/cimera-fin/cimera/internal/insights"
	"github.com/cimera-fin/cimera/internal/model"
	"github.com/cimera-fin/cimera/internal/projection"
	"github.com/cimera-fin/cimera/internal/statements"
)

var (
	flagOutDir string
	flagAsJSON bool
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Proyecta el rango de años del escenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, cfg, err := newEngine()
		if err != nil {
			return err
		}
		base, err := loadBaseVolumes()
		if err != nil {
			return err
		}

		years, err := eng.ProjectRange(context.Background(), cfg, eng.GenerateVolumes(base, cfg))
		if err != nil {
			return err
		}
		logger.Info("proyeccion completada", "años", len(years),
			"desde", cfg.AñoInicio, "hasta", cfg.AñoFin)

		if flagAsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(years)
		}

		for _, annual := range years {
			printAnnual(annual)
			printSummary(insights.Summarize(annual, cfg, eng.Rates()))
		}

		if flagOutDir != "" {
			return writeCSVs(years, eng, cfg)
		}
		return nil
	},
}

func printAnnual(a projection.AnnualProjection) {
	t := a.Totales
	fmt.Println()
	fmt.Printf("%s AÑO %d %s\n", strings.Repeat("=", 24), a.Año, strings.Repeat("=", 24))
	fmt.Printf("  %-28s %18.0f\n", "Ingresos brutos", t.IngresosBrutos)
	fmt.Printf("  %-28s %18.0f\n", "Costos directos", t.CostosDirectos)
	fmt.Printf("  %-28s %18.0f\n", "Gastos operativos", t.GastosOperativos)
	fmt.Printf("  %-28s %18.0f\n", "EBITDA", t.EBITDA)
	fmt.Printf("  %-28s %18.0f\n", "Utilidad operativa", t.UtilidadOperativa)
	fmt.Printf("  %-28s %18.0f\n", "Impuesto de renta", t.ImpuestoRenta)
	fmt.Printf("  %-28s %18.0f\n", "Utilidad neta", t.UtilidadNeta)
	fmt.Printf("  %-28s %18d\n", "Transacciones", t.VolumenTransacciones)
}

func printSummary(s insights.Summary) {
	fmt.Printf("  %-28s %17.1f%%\n", "Margen contribucion", s.MargenContribucionPct*100)
	fmt.Printf("  %-28s %17.1f%%\n", "Margen EBITDA", s.MargenEBITDAPct*100)
	if s.RunwayIlimitado {
		fmt.Printf("  %-28s %18s\n", "Runway", "ilimitado")
	} else {
		fmt.Printf("  %-28s %13.1f meses\n", "Runway", s.RunwayMeses)
	}
	if s.MesPuntoEquilibrio > 0 {
		fmt.Printf("  %-28s %13d (mes)\n", "Punto de equilibrio", s.MesPuntoEquilibrio)
	}
}

func writeCSVs(years []projection.AnnualProjection, eng *projection.Engine, cfg model.Configuration) error {
	if err := os.MkdirAll(flagOutDir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %w", flagOutDir, err)
	}
	pos := statements.OpeningPosition(cfg)
	for _, annual := range years {
		f, err := os.Create(filepath.Join(flagOutDir, fmt.Sprintf("proyeccion-%d.csv", annual.Año)))
		if err != nil {
			return err
		}
		if err := export.WriteAnnual(f, annual); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}

		months, next := statements.ArticulateYear(annual, pos, cfg, eng.Rates(), eng.Snapshot())
		pos = next
		g, err := os.Create(filepath.Join(flagOutDir, fmt.Sprintf("estados-%d.csv", annual.Año)))
		if err != nil {
			return err
		}
		if err := export.WriteStatements(g, annual.Año, months); err != nil {
			g.Close()
			return err
		}
		if err := g.Close(); err != nil {
			return err
		}
		logger.Info("csv exportado", "año", annual.Año, "dir", flagOutDir)
	}
	return nil
}

func init() {
	projectCmd.Flags().StringVar(&flagOutDir, "out", "", "Directorio de salida para CSV por año")
	projectCmd.Flags().BoolVar(&flagAsJSON, "json", false, "Emite las proyecciones como JSON")
	rootCmd.AddCommand(projectCmd)
}
