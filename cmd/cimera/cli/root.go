// Package cli wires the projection engine into the cimera command tree.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cimera-fin/cimera/internal/app"
	"github.com/cimera-fin/cimera/internal/catalog"
	"github.com/cimera-fin/cimera/internal/macro"
	"github.com/cimera-fin/cimera/internal/model"
	"github.com/cimera-fin/cimera/internal/projection"
)

var (
	flagConfig  string
	flagCatalog string
	flagVolumes string
	flagDB      string

	appCfg *app.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "cimera",
	Short:         "Proyeccion financiera y triangulacion de estados para marketplaces",
	Long:          "Motor determinista de proyeccion financiera: catalogo de precios indexado, P&G mensual, estado de resultados, balance general y flujo de caja articulados.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.LoadConfig()
		if err != nil {
			return err
		}
		appCfg = cfg
		logger = app.NewLogger(cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Archivo YAML con la configuracion del escenario")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Archivo YAML con el catalogo de precios (vacio: catalogo base)")
	rootCmd.PersistentFlags().StringVar(&flagVolumes, "volumes", "", "Archivo YAML con los volumenes del primer año")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Ruta del archivo sqlite de escenarios")
}

func Execute() error {
	return rootCmd.Execute()
}

func loadSnapshot() (*catalog.Snapshot, error) {
	path := flagCatalog
	if path == "" && appCfg != nil {
		path = appCfg.CatalogPath
	}
	if path == "" {
		return catalog.Seed()
	}
	return catalog.Load(path)
}

func loadConfiguration() (model.Configuration, error) {
	if flagConfig == "" {
		return model.DefaultConfiguration(), nil
	}
	return model.LoadConfiguration(flagConfig)
}

// defaultVolumes is the first-year volume assumption used when no volumes
// file is given.
func defaultVolumes() model.VolumeMap {
	return model.Flat(map[string]int64{
		"SRV-EST":  100,
		"SRV-PRE":  40,
		"SUS-PRO":  200,
		"CERT-DOC": 300,
	})
}

func loadBaseVolumes() (model.VolumeMap, error) {
	if flagVolumes == "" {
		return defaultVolumes(), nil
	}
	return model.LoadVolumes(flagVolumes)
}

func newEngine() (*projection.Engine, model.Configuration, error) {
	snap, err := loadSnapshot()
	if err != nil {
		return nil, model.Configuration{}, err
	}
	cfg, err := loadConfiguration()
	if err != nil {
		return nil, model.Configuration{}, err
	}
	eng, err := projection.New(snap, macro.DefaultTable())
	if err != nil {
		return nil, model.Configuration{}, err
	}
	return eng, cfg, nil
}

func dbPath() string {
	if flagDB != "" {
		return flagDB
	}
	if appCfg != nil && appCfg.DBPath != "" {
		return appCfg.DBPath
	}
	return "cimera.db"
}
