package plan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

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

func (r *Repo) Add(ctx context.Context, p *Plan) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plan.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	structure, err := EncodeStructure(p.Days)
	if err != nil {
		return nil, fmt.Errorf("encode structure: %w", err)
	}

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_plan (name, duration_weeks, days_per_week, structure, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		p.Name, p.DurationWeeks, p.DaysPerWeek, structure, p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("plan.id", p.ID))
	return p, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plan.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, duration_weeks, days_per_week, structure, created_at
			FROM workout_plan
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans, err := rows2plans(rows)
	if err != nil {
		return nil, err
	}
	if len(plans) != 1 {
		return nil, ErrPlanNotFound
	}

	return plans[0], nil
}

func (r *Repo) List(ctx context.Context) (_ []*Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plan.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, duration_weeks, days_per_week, structure, created_at
			FROM workout_plan
			ORDER BY id;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2plans(rows)
}

func rows2plans(rows pgx.Rows) ([]*Plan, error) {
	plans := make([]*Plan, 0)
	for rows.Next() {
		var (
			p         Plan
			structure []byte
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.DurationWeeks, &p.DaysPerWeek, &structure, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		days, warnings, err := ParseStructure(structure)
		if err != nil {
			return nil, fmt.Errorf("plan %d: %w", p.ID, err)
		}
		for _, w := range warnings {
			log.Warnf("plan %d: skipping malformed structure entry: %s", p.ID, w)
		}
		p.Days = days
		plans = append(plans, &p)
	}

	if err := rows.Err(); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return plans, nil
		}
		return nil, err
	}

	return plans, nil
}
