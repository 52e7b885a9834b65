package cycle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/mesocycle/internal/telemetry/tracing"
	"github.com/2beens/mesocycle/pkg"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) GetActive(ctx context.Context, userID int) (_ *ActiveCycle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.cycle.get-active")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	c := &ActiveCycle{}
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, plan_id, current_week, current_day, started_at, updated_at
			FROM active_cycle WHERE user_id = $1;`,
		userID,
	).Scan(&c.ID, &c.UserID, &c.PlanID, &c.CurrentWeek, &c.CurrentDay, &c.StartedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoActiveCycle
	} else if err != nil {
		return nil, err
	}

	return c, nil
}

// Start creates the active cycle of the user on week 1, day 1.
// The unique index on user_id makes a second active cycle fail with ErrCycleExists.
func (r *Repo) Start(ctx context.Context, userID, planID int) (_ *ActiveCycle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.cycle.start")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID), attribute.Int("plan_id", planID))

	now := time.Now()
	c := &ActiveCycle{
		UserID:      userID,
		PlanID:      planID,
		CurrentWeek: 1,
		CurrentDay:  1,
		StartedAt:   now,
		UpdatedAt:   now,
	}
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO active_cycle (user_id, plan_id, current_week, current_day, started_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		c.UserID, c.PlanID, c.CurrentWeek, c.CurrentDay, c.StartedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if pkg.IsUniqueViolationError(err) {
		return nil, ErrCycleExists
	} else if pkg.IsForeignKeyViolationError(err) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlan, c.PlanID)
	} else if err != nil {
		return nil, err
	}

	return c, nil
}

// CompleteDay stores the day summary and advances the active cycle, in one transaction.
// When the plan is over, the cycle is archived with a snapshot of its performance records
// and the active cycle is removed.
func (r *Repo) CompleteDay(ctx context.Context, dc DayCompletion) (_ *DayAdvance, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.cycle.complete-day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user_id", dc.UserID),
		attribute.Int("week", dc.Week),
		attribute.Int("day", dc.Day),
	)

	summary, err := json.Marshal(dc.Summary)
	if err != nil {
		return nil, fmt.Errorf("marshal day summary: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
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

	active := ActiveCycle{}
	err = tx.QueryRow(
		ctx,
		`SELECT id, user_id, plan_id, current_week, current_day, started_at
			FROM active_cycle WHERE user_id = $1 FOR UPDATE;`,
		dc.UserID,
	).Scan(&active.ID, &active.UserID, &active.PlanID, &active.CurrentWeek, &active.CurrentDay, &active.StartedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoActiveCycle
	} else if err != nil {
		return nil, err
	}
	if active.PlanID != dc.PlanID || active.CurrentWeek != dc.Week || active.CurrentDay != dc.Day {
		return nil, ErrCycleMoved
	}

	if _, err := tx.Exec(
		ctx,
		`INSERT INTO workout_day_log (user_id, plan_id, week_number, day_number, workout_date, status, summary)
			VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		dc.UserID, dc.PlanID, dc.Week, dc.Day, dc.Date, DayStatusCompleted, summary,
	); err != nil {
		return nil, fmt.Errorf("insert day log: %w", err)
	}

	next, completed := active.Next(dc.DaysPerWeek, dc.DurationWeeks)
	advance := &DayAdvance{
		Next:           next,
		CycleCompleted: completed,
	}

	if !completed {
		if _, err := tx.Exec(
			ctx,
			`UPDATE active_cycle SET current_week = $1, current_day = $2, updated_at = now() WHERE id = $3;`,
			next.Week, next.Day, active.ID,
		); err != nil {
			return nil, fmt.Errorf("advance active cycle: %w", err)
		}
		return advance, nil
	}

	var snapshot []byte
	if err := tx.QueryRow(
		ctx,
		`SELECT COALESCE(json_agg(pr ORDER BY pr.week_number, pr.day_number, pr.id), '[]'::json)
			FROM performance_record pr
			WHERE pr.user_id = $1 AND pr.plan_id = $2 AND pr.created_at >= $3;`,
		dc.UserID, dc.PlanID, active.StartedAt,
	).Scan(&snapshot); err != nil {
		return nil, fmt.Errorf("performance snapshot: %w", err)
	}

	if _, err := tx.Exec(
		ctx,
		`INSERT INTO completed_cycle (user_id, plan_id, started_at, completed_at, total_weeks, total_days, snapshot)
			VALUES ($1, $2, $3, now(), $4, $5, $6);`,
		dc.UserID, dc.PlanID, active.StartedAt, dc.DurationWeeks, dc.DurationWeeks*dc.DaysPerWeek, snapshot,
	); err != nil {
		return nil, fmt.Errorf("archive cycle: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM active_cycle WHERE id = $1;`, active.ID); err != nil {
		return nil, fmt.Errorf("remove active cycle: %w", err)
	}

	log.Infof("user %d completed mesocycle on plan %d", dc.UserID, dc.PlanID)
	return advance, nil
}

// DayLogs returns the completed days of the user on the plan, most recent first.
func (r *Repo) DayLogs(ctx context.Context, userID, planID int) (_ []DayLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.cycle.day-logs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, plan_id, week_number, day_number, workout_date, status, summary, created_at
			FROM workout_day_log
			WHERE user_id = $1 AND plan_id = $2
			ORDER BY week_number DESC, day_number DESC, id DESC;`,
		userID, planID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]DayLog, 0)
	for rows.Next() {
		var dl DayLog
		if err := rows.Scan(
			&dl.ID, &dl.UserID, &dl.PlanID, &dl.Week, &dl.Day, &dl.WorkoutDate, &dl.Status, &dl.Summary, &dl.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		logs = append(logs, dl)
	}

	return logs, rows.Err()
}

func (r *Repo) Completed(ctx context.Context, userID int) (_ []CompletedCycle, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.cycle.completed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, plan_id, started_at, completed_at, total_weeks, total_days, snapshot
			FROM completed_cycle
			WHERE user_id = $1
			ORDER BY completed_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cycles := make([]CompletedCycle, 0)
	for rows.Next() {
		var c CompletedCycle
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.PlanID, &c.StartedAt, &c.CompletedAt, &c.TotalWeeks, &c.TotalDays, &c.Snapshot,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		cycles = append(cycles, c)
	}

	return cycles, rows.Err()
}
