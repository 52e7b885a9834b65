package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2beens/mesocycle/internal/mesocycle/cycle"
	"github.com/2beens/mesocycle/internal/mesocycle/performance"
)

const defaultHistoryLimit = 50

// Handler parses tool input, calls the service and formats the MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

// GetMesocycleSchemaTool returns the MCP tool handler for get_mesocycle_schema.
func (h *Handler) GetMesocycleSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

type ActiveCycleInput struct {
	UserID int `json:"user_id" jsonschema:"Id of the user"`
}

// GetActiveCycleTool returns the MCP tool handler for get_active_cycle.
func (h *Handler) GetActiveCycleTool() func(context.Context, *mcp.CallToolRequest, ActiveCycleInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ActiveCycleInput) (*mcp.CallToolResult, any, error) {
		active, err := h.service.GetActiveCycle(ctx, in.UserID)
		switch {
		case errors.Is(err, ErrInvalidInput):
			return errorResult(err.Error()), nil, nil
		case errors.Is(err, cycle.ErrNoActiveCycle):
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "The user has no active cycle."}},
			}, nil, nil
		case err != nil:
			return errorResult("Error fetching active cycle: " + err.Error()), nil, nil
		}
		return jsonResult(active), nil, nil
	}
}

type PerformanceHistoryInput struct {
	UserID      int    `json:"user_id" jsonschema:"Id of the user"`
	PlanID      int    `json:"plan_id,omitempty" jsonschema:"Plan id, defaults to the plan of the active cycle"`
	Exercise    string `json:"exercise,omitempty" jsonschema:"Filter by exercise name (e.g. Bench Press)"`
	MuscleGroup string `json:"muscle_group,omitempty" jsonschema:"Filter by muscle group (e.g. chest, legs)"`
	Limit       int    `json:"limit,omitempty" jsonschema:"Max number of records, most recent first (default 50)"`
}

// GetPerformanceHistoryTool returns the MCP tool handler for get_performance_history.
func (h *Handler) GetPerformanceHistoryTool() func(context.Context, *mcp.CallToolRequest, PerformanceHistoryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PerformanceHistoryInput) (*mcp.CallToolResult, any, error) {
		limit := in.Limit
		if limit <= 0 {
			limit = defaultHistoryLimit
		}
		history, err := h.service.GetPerformanceHistory(ctx, performance.HistoryParams{
			UserID:       in.UserID,
			PlanID:       in.PlanID,
			ExerciseName: in.Exercise,
			MuscleGroup:  in.MuscleGroup,
			Limit:        limit,
		})
		switch {
		case errors.Is(err, ErrInvalidInput):
			return errorResult(err.Error()), nil, nil
		case errors.Is(err, cycle.ErrNoActiveCycle):
			return errorResult("The user has no active cycle, pass plan_id."), nil, nil
		case err != nil:
			return errorResult("Error fetching performance history: " + err.Error()), nil, nil
		}
		return jsonResult(history), nil, nil
	}
}

type IntensityScheduleInput struct {
	DurationWeeks int `json:"duration_weeks" jsonschema:"Number of weeks of the mesocycle, the last one is the deload"`
	Sets          int `json:"sets" jsonschema:"Number of sets of the exercise"`
}

// GetIntensityScheduleTool returns the MCP tool handler for get_intensity_schedule.
func (h *Handler) GetIntensityScheduleTool() func(context.Context, *mcp.CallToolRequest, IntensityScheduleInput) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, in IntensityScheduleInput) (*mcp.CallToolResult, any, error) {
		weeks, err := h.service.GetIntensitySchedule(in.DurationWeeks, in.Sets)
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}
		return jsonResult(weeks), nil, nil
	}
}
