package plan

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Definition is the authored form of a plan, as found in plan files and POST /plans bodies.
type Definition struct {
	Name          string    `json:"name" yaml:"name"`
	DurationWeeks int       `json:"durationWeeks" yaml:"durationWeeks"`
	DaysPerWeek   int       `json:"daysPerWeek" yaml:"daysPerWeek"`
	Structure     Structure `json:"structure" yaml:"structure"`
}

// ToPlan builds and validates the plan. Skipped entries and days outside of
// [1, daysPerWeek] are returned as warnings; an invalid plan is an error.
func (d Definition) ToPlan() (*Plan, []error, error) {
	days, warnings := BuildDays(d.Structure)
	for day := range days {
		if day > d.DaysPerWeek {
			warnings = multierr.Append(warnings, fmt.Errorf("day %d is beyond days per week (%d)", day, d.DaysPerWeek))
			delete(days, day)
		}
	}

	p := &Plan{
		Name:          strings.TrimSpace(d.Name),
		DurationWeeks: d.DurationWeeks,
		DaysPerWeek:   d.DaysPerWeek,
		Days:          days,
	}
	if err := p.Validate(); err != nil {
		return nil, multierr.Errors(warnings), fmt.Errorf("invalid plan: %w", err)
	}
	return p, multierr.Errors(warnings), nil
}

func DecodeYAML(r io.Reader) (*Plan, []error, error) {
	var d Definition
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return nil, nil, fmt.Errorf("decode yaml plan: %w", err)
	}
	return d.ToPlan()
}

func DecodeJSON(r io.Reader) (*Plan, []error, error) {
	var d Definition
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, nil, fmt.Errorf("decode json plan: %w", err)
	}
	return d.ToPlan()
}

// LoadFile reads a plan file, YAML unless the extension says .json.
func LoadFile(path string) (*Plan, []error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open plan file: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return DecodeJSON(f)
	}
	return DecodeYAML(f)
}
