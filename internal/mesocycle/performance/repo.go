package performance

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/mesocycle/internal/mesocycle/progression"
	"github.com/2beens/mesocycle/internal/telemetry/tracing"
)

type HistoryParams struct {
	UserID       int
	PlanID       int
	ExerciseName string
	MuscleGroup  string
	// when set, only records from a (week, day) earlier than this one are returned
	BeforeWeek int
	BeforeDay  int
	Limit      int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add stores all records in one transaction; either all of them are written or none.
func (r *Repo) Add(ctx context.Context, records []Record) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.performance.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("records", len(records)))

	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("invalid record: %w", err)
		}
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(
			`INSERT INTO performance_record
				(user_id, plan_id, week_number, day_number, exercise_name, muscle_group,
				 planned_sets, planned_reps, actual_sets, actual_reps, weight_used, intensity,
				 pump_level, is_sore, can_add_sets, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);`,
			rec.UserID, rec.PlanID, rec.Week, rec.Day, rec.ExerciseName, rec.MuscleGroup,
			rec.PlannedSets, rec.PlannedReps, rec.ActualSets, rec.ActualReps, rec.WeightUsed, rec.Intensity,
			string(rec.PumpLevel), rec.IsSore, rec.CanAddSets, rec.CreatedAt,
		)
	}

	return tx.SendBatch(ctx, batch).Close()
}

// History returns the records of the user on the plan, most recent (week, day) first.
// Empty exercise name / muscle group match everything.
func (r *Repo) History(ctx context.Context, params HistoryParams) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.performance.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user_id", params.UserID),
		attribute.Int("plan_id", params.PlanID),
		attribute.String("exercise_name", params.ExerciseName),
		attribute.String("muscle_group", params.MuscleGroup),
	)

	limit := params.Limit
	if limit <= 0 {
		limit = 500
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT
				id, user_id, plan_id, week_number, day_number, exercise_name, muscle_group,
				planned_sets, planned_reps, actual_sets, actual_reps, weight_used, intensity,
				pump_level, is_sore, can_add_sets, created_at
			FROM performance_record
			WHERE user_id = $1 AND plan_id = $2
				AND ($3::text = '' OR exercise_name = $3)
				AND ($4::text = '' OR muscle_group = $4)
				AND ($5::int = 0 OR week_number < $5 OR (week_number = $5 AND day_number < $6))
			ORDER BY week_number DESC, day_number DESC, id DESC
			LIMIT $7;`,
		params.UserID, params.PlanID, params.ExerciseName, params.MuscleGroup,
		params.BeforeWeek, params.BeforeDay, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var (
			rec  Record
			pump string
		)
		if err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.PlanID, &rec.Week, &rec.Day, &rec.ExerciseName, &rec.MuscleGroup,
			&rec.PlannedSets, &rec.PlannedReps, &rec.ActualSets, &rec.ActualReps, &rec.WeightUsed, &rec.Intensity,
			&pump, &rec.IsSore, &rec.CanAddSets, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		rec.PumpLevel = progression.PumpLevel(pump)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// Latest returns the record today's prescription of an exercise is based on, see PickPrevious.
func (r *Repo) Latest(ctx context.Context, params HistoryParams) (*Record, error) {
	if params.BeforeWeek < 1 {
		return nil, errors.New("latest record: week not set")
	}
	history, err := r.History(ctx, params)
	if err != nil {
		return nil, err
	}
	rec, ok := PickPrevious(history, params.BeforeDay)
	if !ok {
		return nil, ErrNoHistory
	}
	return rec, nil
}

// TrainedGroups returns the muscle groups with at least one record on a (week, day) earlier than the given one.
func (r *Repo) TrainedGroups(ctx context.Context, userID, planID, week, day int) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.performance.trained-groups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT muscle_group
			FROM performance_record
			WHERE user_id = $1 AND plan_id = $2
				AND (week_number < $3 OR (week_number = $3 AND day_number < $4));`,
		userID, planID, week, day,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]string, 0)
	for rows.Next() {
		var group string
		if err := rows.Scan(&group); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		groups = append(groups, group)
	}

	return groups, rows.Err()
}

// WeeklySets returns the number of sets logged for the muscle group on the days of week before day.
func (r *Repo) WeeklySets(ctx context.Context, userID, planID, week, day int, muscleGroup string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.performance.weekly-sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("muscle_group", muscleGroup), attribute.Int("week", week))

	var sets int
	err = r.db.QueryRow(
		ctx,
		`SELECT COALESCE(SUM(actual_sets), 0)
			FROM performance_record
			WHERE user_id = $1 AND plan_id = $2 AND week_number = $3 AND day_number < $4 AND muscle_group = $5;`,
		userID, planID, week, day, muscleGroup,
	).Scan(&sets)
	if err != nil {
		return 0, err
	}

	return sets, nil
}
