package mcp

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/mesocycle/internal/mesocycle/cycle"
	"github.com/2beens/mesocycle/internal/mesocycle/performance"
	"github.com/2beens/mesocycle/internal/mesocycle/progression"
)

const maxScheduleWeeks = 16

var ErrInvalidInput = errors.New("invalid input")

type cycleGetter interface {
	GetActive(ctx context.Context, userID int) (*cycle.ActiveCycle, error)
}

type historyAnalyzer interface {
	ExerciseHistory(ctx context.Context, params performance.HistoryParams) (*performance.ExerciseHistory, error)
}

// contextService provides the mesocycle context data. Used by Handler, for testability.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	GetActiveCycle(ctx context.Context, userID int) (*cycle.ActiveCycle, error)
	GetPerformanceHistory(ctx context.Context, params performance.HistoryParams) (*performance.ExerciseHistory, error)
	GetIntensitySchedule(durationWeeks, sets int) ([]progression.WeekTargets, error)
}

type ContextService struct {
	schema   SchemaRepo
	cycles   cycleGetter
	analyzer historyAnalyzer
}

func NewContextService(schemaRepo SchemaRepo, cycles cycleGetter, analyzer historyAnalyzer) *ContextService {
	return &ContextService{
		schema:   schemaRepo,
		cycles:   cycles,
		analyzer: analyzer,
	}
}

// GetSchema returns the columns of the mesocycle tables, formatted as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetMesocycleColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Mesocycle DB Schema\n\nNo mesocycle tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Mesocycle DB Schema\n\n")
	b.WriteString("Tables: ")
	b.WriteString(strings.Join(mesocycleTables, ", "))
	b.WriteString(" (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) GetActiveCycle(ctx context.Context, userID int) (*cycle.ActiveCycle, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}
	return s.cycles.GetActive(ctx, userID)
}

// GetPerformanceHistory returns the history of the user; without a plan id, the plan
// of the user's active cycle is used.
func (s *ContextService) GetPerformanceHistory(ctx context.Context, params performance.HistoryParams) (*performance.ExerciseHistory, error) {
	if params.UserID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}
	if params.PlanID <= 0 {
		active, err := s.cycles.GetActive(ctx, params.UserID)
		if err != nil {
			return nil, fmt.Errorf("resolve plan of active cycle: %w", err)
		}
		params.PlanID = active.PlanID
	}
	return s.analyzer.ExerciseHistory(ctx, params)
}

func (s *ContextService) GetIntensitySchedule(durationWeeks, sets int) ([]progression.WeekTargets, error) {
	if durationWeeks < 1 || durationWeeks > maxScheduleWeeks {
		return nil, fmt.Errorf("%w: duration weeks must be in [1, %d]", ErrInvalidInput, maxScheduleWeeks)
	}
	if sets < 1 {
		return nil, fmt.Errorf("%w: sets must be positive", ErrInvalidInput)
	}
	return progression.NewSchedule(durationWeeks).Overview(sets), nil
}
