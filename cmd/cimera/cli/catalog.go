package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cimera-fin/cimera/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Lista el catalogo de precios activo",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := loadSnapshot()
		if err != nil {
			return err
		}

		kinds := []catalog.Kind{
			catalog.KindIngreso, catalog.KindCostoVariable,
			catalog.KindGastoFijo, catalog.KindImpuesto, catalog.KindCapex,
		}
		for _, kind := range kinds {
			items := snap.ItemsByKind(kind)
			if len(items) == 0 {
				continue
			}
			fmt.Printf("\n%s\n", kind)
			for _, it := range items {
				valor := fmt.Sprintf("%.0f", it.Valor)
				if it.EsPorcentaje {
					valor = fmt.Sprintf("%.2f%%", it.Valor*100)
				}
				fmt.Printf("  %-10s %-34s %14s  %s\n", it.Codigo, it.Nombre, valor, it.Frecuencia)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
