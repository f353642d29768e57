package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cimera-fin/cimera/internal/statements"
	"github.com/cimera-fin/cimera/internal/triangulation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Proyecta y triangula los tres estados mes a mes",
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

		pos := statements.OpeningPosition(cfg)
		invalid := 0
		for _, annual := range years {
			months, next := statements.ArticulateYear(annual, pos, cfg, eng.Rates(), eng.Snapshot())
			pos = next
			for _, m := range months {
				res := triangulation.Validate(m.Proyeccion.UtilidadNeta, m.Balance, m.Flujo)
				if res.Valido {
					continue
				}
				invalid++
				for _, mm := range res.Errores {
					fmt.Printf("  %d-%02d [%s] %s: esperado %.0f, obtenido %.0f (dif %.2f)\n",
						m.Flujo.Año, m.Flujo.Mes, mm.Tipo, mm.Detalle,
						mm.Esperado, mm.Obtenido, mm.Diferencia)
				}
			}
		}

		if invalid > 0 {
			return fmt.Errorf("triangulacion fallida en %d meses", invalid)
		}
		logger.Info("triangulacion valida", "años", len(years))
		fmt.Println("Los tres estados concilian en todos los meses.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
