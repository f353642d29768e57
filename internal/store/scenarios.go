package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cimera-fin/cimera/internal/catalog"
	"github.com/cimera-fin/cimera/internal/model"
)

var (
	ErrScenarioNotFound = errors.New("escenario no encontrado")
	ErrRunNotFound      = errors.New("corrida no encontrada")
)

// Scenario is a named configuration plus the catalog overrides applied on
// top of the base catalog.
type Scenario struct {
	ID          string              `json:"id"`
	Nombre      string              `json:"nombre"`
	Descripcion string              `json:"descripcion"`
	Config      model.Configuration `json:"config"`
	Overrides   catalog.Overlay     `json:"overrides"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// Run records the outcome of one projection over a scenario.
type Run struct {
	ID           string    `json:"id"`
	ScenarioID   string    `json:"scenarioId"`
	AñoInicio    int       `json:"añoInicio"`
	AñoFin       int       `json:"añoFin"`
	UtilidadNeta float64   `json:"utilidadNeta"`
	Valido       bool      `json:"valido"`
	Resultado    string    `json:"resultado"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (s *Store) SaveScenario(ctx context.Context, sc *Scenario) error {
	if sc.ID == "" {
		sc.ID = uuid.Must(uuid.NewV7()).String()
	}
	if sc.CreatedAt.IsZero() {
		sc.CreatedAt = time.Now().UTC()
	}
	if sc.Overrides == nil {
		sc.Overrides = catalog.Overlay{}
	}

	cfgJSON, err := json.Marshal(sc.Config)
	if err != nil {
		return fmt.Errorf("serializar configuracion: %w", err)
	}
	ovJSON, err := json.Marshal(sc.Overrides)
	if err != nil {
		return fmt.Errorf("serializar overrides: %w", err)
	}

	_, err = s.writer.ExecContext(ctx, `
		INSERT INTO scenarios (id, nombre, descripcion, config, overrides, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(nombre) DO UPDATE SET
			descripcion = excluded.descripcion,
			config      = excluded.config,
			overrides   = excluded.overrides`,
		sc.ID, sc.Nombre, sc.Descripcion, string(cfgJSON), string(ovJSON),
		sc.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("guardar escenario: %w", err)
	}
	return nil
}

func (s *Store) GetScenario(ctx context.Context, nombre string) (*Scenario, error) {
	row := s.reader.QueryRowContext(ctx, `
		SELECT id, nombre, descripcion, config, overrides, created_at
		FROM scenarios WHERE nombre = ?`, nombre)
	return scanScenario(row)
}

func (s *Store) ListScenarios(ctx context.Context) ([]Scenario, error) {
	rows, err := s.reader.QueryContext(ctx, `
		SELECT id, nombre, descripcion, config, overrides, created_at
		FROM scenarios ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("listar escenarios: %w", err)
	}
	defer rows.Close()

	var out []Scenario
	for rows.Next() {
		sc, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *sc)
	}
	return out, rows.Err()
}

func (s *Store) DeleteScenario(ctx context.Context, nombre string) error {
	res, err := s.writer.ExecContext(ctx, `DELETE FROM scenarios WHERE nombre = ?`, nombre)
	if err != nil {
		return fmt.Errorf("eliminar escenario: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrScenarioNotFound
	}
	return nil
}

func (s *Store) SaveRun(ctx context.Context, r *Run) error {
	if r.ID == "" {
		r.ID = uuid.Must(uuid.NewV7()).String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	valido := 0
	if r.Valido {
		valido = 1
	}
	_, err := s.writer.ExecContext(ctx, `
		INSERT INTO runs (id, scenario_id, año_inicio, año_fin, utilidad_neta, valido, resultado, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.ScenarioID, r.AñoInicio, r.AñoFin, r.UtilidadNeta, valido, r.Resultado,
		r.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("guardar corrida: %w", err)
	}
	return nil
}

func (s *Store) ListRuns(ctx context.Context, scenarioID string) ([]Run, error) {
	rows, err := s.reader.QueryContext(ctx, `
		SELECT id, scenario_id, año_inicio, año_fin, utilidad_neta, valido, resultado, created_at
		FROM runs WHERE scenario_id = ? ORDER BY created_at DESC`, scenarioID)
	if err != nil {
		return nil, fmt.Errorf("listar corridas: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		var valido int
		var createdAt string
		if err := rows.Scan(&r.ID, &r.ScenarioID, &r.AñoInicio, &r.AñoFin,
			&r.UtilidadNeta, &valido, &r.Resultado, &createdAt); err != nil {
			return nil, fmt.Errorf("leer corrida: %w", err)
		}
		r.Valido = valido == 1
		r.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		out = append(out, r)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScenario(row rowScanner) (*Scenario, error) {
	var sc Scenario
	var cfgJSON, ovJSON, createdAt string
	err := row.Scan(&sc.ID, &sc.Nombre, &sc.Descripcion, &cfgJSON, &ovJSON, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScenarioNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leer escenario: %w", err)
	}
	if err := json.Unmarshal([]byte(cfgJSON), &sc.Config); err != nil {
		return nil, fmt.Errorf("deserializar configuracion: %w", err)
	}
	if err := json.Unmarshal([]byte(ovJSON), &sc.Overrides); err != nil {
		return nil, fmt.Errorf("deserializar overrides: %w", err)
	}
	sc.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	return &sc, nil
}
