package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cimera-fin/cimera/internal/catalog"
	"github.com/cimera-fin/cimera/internal/macro"
	"github.com/cimera-fin/cimera/internal/projection"
	"github.com/cimera-fin/cimera/internal/statements"
	"github.com/cimera-fin/cimera/internal/store"
	"github.com/cimera-fin/cimera/internal/triangulation"
)

var (
	flagScenarioDesc      string
	flagScenarioOverrides []string
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Gestiona escenarios guardados",
}

var scenarioSaveCmd = &cobra.Command{
	Use:   "save <nombre>",
	Short: "Guarda la configuracion actual como escenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration()
		if err != nil {
			return err
		}
		overrides, err := parseOverrides(flagScenarioOverrides)
		if err != nil {
			return err
		}
		// Overrides get validated against the catalog before persisting.
		snap, err := loadSnapshot()
		if err != nil {
			return err
		}
		if _, err := snap.With(overrides); err != nil {
			return err
		}

		st, err := store.Open(dbPath())
		if err != nil {
			return err
		}
		defer st.Close()

		sc := &store.Scenario{
			Nombre:      args[0],
			Descripcion: flagScenarioDesc,
			Config:      cfg,
			Overrides:   overrides,
		}
		if err := st.SaveScenario(context.Background(), sc); err != nil {
			return err
		}
		logger.Info("escenario guardado", "nombre", sc.Nombre, "id", sc.ID)
		return nil
	},
}

var scenarioListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lista los escenarios guardados",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(dbPath())
		if err != nil {
			return err
		}
		defer st.Close()

		scenarios, err := st.ListScenarios(context.Background())
		if err != nil {
			return err
		}
		if len(scenarios) == 0 {
			fmt.Println("No hay escenarios guardados.")
			return nil
		}
		for _, sc := range scenarios {
			fmt.Printf("  %-24s %d-%d  capital %.0f  overrides %d\n",
				sc.Nombre, sc.Config.AñoInicio, sc.Config.AñoFin,
				sc.Config.CapitalInicial, len(sc.Overrides))
		}
		return nil
	},
}

var scenarioDeleteCmd = &cobra.Command{
	Use:   "delete <nombre>",
	Short: "Elimina un escenario guardado",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(dbPath())
		if err != nil {
			return err
		}
		defer st.Close()
		return st.DeleteScenario(context.Background(), args[0])
	},
}

var scenarioRunCmd = &cobra.Command{
	Use:   "run <nombre>",
	Short: "Proyecta un escenario guardado y registra la corrida",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		st, err := store.Open(dbPath())
		if err != nil {
			return err
		}
		defer st.Close()

		sc, err := st.GetScenario(ctx, args[0])
		if err != nil {
			return err
		}

		snap, err := loadSnapshot()
		if err != nil {
			return err
		}
		if len(sc.Overrides) > 0 {
			snap, err = snap.With(sc.Overrides)
			if err != nil {
				return err
			}
		}
		eng, err := projection.New(snap, macro.DefaultTable())
		if err != nil {
			return err
		}
		base, err := loadBaseVolumes()
		if err != nil {
			return err
		}

		years, err := eng.ProjectRange(ctx, sc.Config, eng.GenerateVolumes(base, sc.Config))
		if err != nil {
			return err
		}

		pos := statements.OpeningPosition(sc.Config)
		valido := true
		var utilidad float64
		for _, annual := range years {
			utilidad += annual.Totales.UtilidadNeta
			months, next := statements.ArticulateYear(annual, pos, sc.Config, eng.Rates(), eng.Snapshot())
			pos = next
			for _, m := range months {
				if res := triangulation.Validate(m.Proyeccion.UtilidadNeta, m.Balance, m.Flujo); !res.Valido {
					valido = false
				}
			}
			printAnnual(annual)
		}

		resultado := "triangulacion valida"
		if !valido {
			resultado = "triangulacion fallida"
		}
		run := &store.Run{
			ScenarioID:   sc.ID,
			AñoInicio:    sc.Config.AñoInicio,
			AñoFin:       sc.Config.AñoFin,
			UtilidadNeta: utilidad,
			Valido:       valido,
			Resultado:    resultado,
		}
		if err := st.SaveRun(ctx, run); err != nil {
			return err
		}
		logger.Info("corrida registrada", "escenario", sc.Nombre, "valido", valido)
		return nil
	},
}

var scenarioRunsCmd = &cobra.Command{
	Use:   "runs <nombre>",
	Short: "Lista las corridas de un escenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		st, err := store.Open(dbPath())
		if err != nil {
			return err
		}
		defer st.Close()

		sc, err := st.GetScenario(ctx, args[0])
		if err != nil {
			return err
		}
		runs, err := st.ListRuns(ctx, sc.ID)
		if err != nil {
			return err
		}
		for _, r := range runs {
			fmt.Printf("  %s  %d-%d  utilidad %.0f  %s\n",
				r.CreatedAt.Format("2006-01-02 15:04"), r.AñoInicio, r.AñoFin,
				r.UtilidadNeta, r.Resultado)
		}
		return nil
	},
}

// parseOverrides turns CODE=valor pairs into a catalog overlay.
func parseOverrides(pairs []string) (catalog.Overlay, error) {
	ov := catalog.Overlay{}
	for _, pair := range pairs {
		code, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("override invalido %q, se espera CODIGO=valor", pair)
		}
		valor, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("override %s: %w", code, err)
		}
		ov[code] = valor
	}
	return ov, nil
}

func init() {
	scenarioSaveCmd.Flags().StringVar(&flagScenarioDesc, "desc", "", "Descripcion del escenario")
	scenarioSaveCmd.Flags().StringArrayVar(&flagScenarioOverrides, "set", nil, "Override de catalogo CODIGO=valor (repetible)")
	scenarioCmd.AddCommand(scenarioSaveCmd, scenarioListCmd, scenarioDeleteCmd, scenarioRunCmd, scenarioRunsCmd)
	rootCmd.AddCommand(scenarioCmd)
}
