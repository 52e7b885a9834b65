package mcp

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2beens/mesocycle/internal/mesocycle/cycle"
	"github.com/2beens/mesocycle/internal/mesocycle/performance"
)

// NewServer builds the MCP server with read-only mesocycle tools. It is served over stdio
// by cmd/mesocycle_mcp, and mounted at /mcp by the backend.
func NewServer(pool *pgxpool.Pool) *mcp.Server {
	svc := NewContextService(
		NewPoolSchemaRepo(pool),
		cycle.NewRepo(pool),
		performance.NewAnalyzer(performance.NewRepo(pool)),
	)
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "mesocycle-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_mesocycle_schema",
		Description: "Returns the DB schema of the mesocycle tables (plans, cycles, day logs, performance, soreness and pump records): columns, types, nullable, default.",
	}, h.GetMesocycleSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_active_cycle",
		Description: "Returns the active mesocycle of a user: plan id, current week and day. Arg: user_id.",
	}, h.GetActiveCycleTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_performance_history",
		Description: "Returns logged performance records of a user (sets, reps, weights, RPE per set), most recent first, with per day stats. Args: user_id; optional: plan_id, exercise, muscle_group, limit. Use it to see how an exercise progressed over the cycle.",
	}, h.GetPerformanceHistoryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_intensity_schedule",
		Description: "Returns the target RPE of every set for each week of a mesocycle. Args: duration_weeks, sets.",
	}, h.GetIntensityScheduleTool())

	return s
}
