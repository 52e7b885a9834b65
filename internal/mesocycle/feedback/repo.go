package feedback

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/mesocycle/internal/mesocycle/progression"
	"github.com/2beens/mesocycle/internal/telemetry/tracing"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// AddSoreness stores the answer of a soreness check. A second answer for the same
// muscle group on the same date replaces the first one.
func (r *Repo) AddSoreness(ctx context.Context, rec SorenessRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.feedback.add-soreness")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user_id", rec.UserID),
		attribute.String("muscle_group", rec.MuscleGroup),
		attribute.String("soreness", rec.SorenessLevel.String()),
	)

	if !rec.SorenessLevel.IsValid() {
		return fmt.Errorf("invalid soreness level: %s", rec.SorenessLevel)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO soreness_record (user_id, workout_date, muscle_group, soreness_level, healed, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (user_id, muscle_group, workout_date)
			DO UPDATE SET soreness_level = EXCLUDED.soreness_level, healed = EXCLUDED.healed, created_at = EXCLUDED.created_at;`,
		rec.UserID, rec.WorkoutDate, rec.MuscleGroup, string(rec.SorenessLevel), rec.SorenessLevel.Healed(), rec.CreatedAt,
	)
	return err
}

func (r *Repo) AddPump(ctx context.Context, rec PumpRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.feedback.add-pump")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user_id", rec.UserID),
		attribute.String("muscle_group", rec.MuscleGroup),
		attribute.String("pump", rec.PumpLevel.String()),
	)

	if !rec.PumpLevel.IsValid() {
		return fmt.Errorf("invalid pump level: %s", rec.PumpLevel)
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO pump_record (user_id, workout_date, muscle_group, pump_level, created_at)
			VALUES ($1, $2, $3, $4, $5);`,
		rec.UserID, rec.WorkoutDate, rec.MuscleGroup, string(rec.PumpLevel), rec.CreatedAt,
	)
	return err
}

// LatestPump returns the most recently reported pump of the muscle group, on any date.
// Groups with no reports get the default pump.
func (r *Repo) LatestPump(ctx context.Context, userID int, muscleGroup string) (_ progression.PumpLevel, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.feedback.latest-pump")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var pump string
	err = r.db.QueryRow(
		ctx,
		`SELECT pump_level FROM pump_record
			WHERE user_id = $1 AND muscle_group = $2
			ORDER BY created_at DESC, id DESC
			LIMIT 1;`,
		userID, muscleGroup,
	).Scan(&pump)
	if errors.Is(err, pgx.ErrNoRows) {
		return progression.DefaultPump, nil
	} else if err != nil {
		return progression.DefaultPump, err
	}

	level := progression.PumpLevel(pump)
	if !level.IsValid() {
		return progression.DefaultPump, nil
	}
	return level, nil
}

// SorenessHistory returns the soreness answers of the user, most recent first.
// An empty muscle group matches all of them.
func (r *Repo) SorenessHistory(ctx context.Context, userID int, muscleGroup string, limit int) (_ []SorenessRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.feedback.soreness-history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, workout_date, muscle_group, soreness_level, healed, created_at
			FROM soreness_record
			WHERE user_id = $1 AND ($2::text = '' OR muscle_group = $2)
			ORDER BY workout_date DESC, id DESC
			LIMIT $3;`,
		userID, muscleGroup, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]SorenessRecord, 0)
	for rows.Next() {
		var (
			rec   SorenessRecord
			level string
		)
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.WorkoutDate, &rec.MuscleGroup, &level, &rec.Healed, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		rec.SorenessLevel = progression.SorenessLevel(level)
		records = append(records, rec)
	}

	return records, rows.Err()
}

// PumpHistory returns the pump reports of the user, most recent first.
// An empty muscle group matches all of them.
func (r *Repo) PumpHistory(ctx context.Context, userID int, muscleGroup string, limit int) (_ []PumpRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.feedback.pump-history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, workout_date, muscle_group, pump_level, created_at
			FROM pump_record
			WHERE user_id = $1 AND ($2::text = '' OR muscle_group = $2)
			ORDER BY created_at DESC, id DESC
			LIMIT $3;`,
		userID, muscleGroup, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]PumpRecord, 0)
	for rows.Next() {
		var (
			rec   PumpRecord
			level string
		)
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.WorkoutDate, &rec.MuscleGroup, &level, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		rec.PumpLevel = progression.PumpLevel(level)
		records = append(records, rec)
	}

	return records, rows.Err()
}

// WorkoutDate truncates t to the calendar date the records are keyed by.
func WorkoutDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
