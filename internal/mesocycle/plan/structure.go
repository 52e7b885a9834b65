package plan

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

const dayKeyPrefix = "day"

// Structure is the stored (and authored) form of a plan's days: {"day1": [blocks...], "day2": ...}.
type Structure map[string][]MuscleGroupBlock

// ParseStructure decodes a stored structure document and builds the typed day templates.
// See BuildDays for how malformed entries are handled.
func ParseStructure(raw []byte) (map[int]DayTemplate, []error, error) {
	var s Structure
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, nil, fmt.Errorf("unmarshal plan structure: %w", err)
	}
	days, warnings := BuildDays(s)
	return days, multierr.Errors(warnings), nil
}

// BuildDays converts a structure into day templates. Malformed entries (unknown day keys,
// blocks without a muscle group, exercises with no name or non positive sets/reps) are
// skipped; every skipped entry is reported in the returned multierr warnings.
func BuildDays(s Structure) (map[int]DayTemplate, error) {
	var warnings error
	days := make(map[int]DayTemplate, len(s))

	for key, blocks := range s {
		day, ok := parseDayKey(key)
		if !ok {
			warnings = multierr.Append(warnings, fmt.Errorf("unknown day key %q", key))
			continue
		}

		dt := DayTemplate{Day: day}
		for bi, block := range blocks {
			group := strings.TrimSpace(block.MuscleGroup)
			if group == "" {
				warnings = multierr.Append(warnings, fmt.Errorf("%s block %d: muscle group empty", key, bi))
				continue
			}

			valid := MuscleGroupBlock{MuscleGroup: group}
			for ei, ex := range block.Exercises {
				ex.ExerciseName = strings.TrimSpace(ex.ExerciseName)
				if ex.MuscleGroup == "" {
					ex.MuscleGroup = group
				}
				if ex.ExerciseName == "" {
					warnings = multierr.Append(warnings, fmt.Errorf("%s %s exercise %d: name empty", key, group, ei))
					continue
				}
				if ex.DefaultSets < 1 || ex.DefaultReps < 1 {
					warnings = multierr.Append(warnings, fmt.Errorf(
						"%s %s %s: sets and reps must be positive (sets: %d, reps: %d)",
						key, group, ex.ExerciseName, ex.DefaultSets, ex.DefaultReps,
					))
					continue
				}
				valid.Exercises = append(valid.Exercises, ex)
			}

			if len(valid.Exercises) == 0 {
				warnings = multierr.Append(warnings, fmt.Errorf("%s %s: no valid exercises", key, group))
				continue
			}
			dt.Blocks = append(dt.Blocks, valid)
		}

		if len(dt.Blocks) == 0 {
			warnings = multierr.Append(warnings, fmt.Errorf("%s: empty day", key))
			continue
		}
		days[day] = dt
	}

	return days, warnings
}

// EncodeStructure is the inverse of ParseStructure.
func EncodeStructure(days map[int]DayTemplate) ([]byte, error) {
	s := make(Structure, len(days))
	for day, dt := range days {
		s[DayKey(day)] = dt.Blocks
	}
	return json.Marshal(s)
}

func DayKey(day int) string {
	return dayKeyPrefix + strconv.Itoa(day)
}

// SortedDays returns the day indexes of the plan in ascending order.
func SortedDays(days map[int]DayTemplate) []int {
	indexes := make([]int, 0, len(days))
	for day := range days {
		indexes = append(indexes, day)
	}
	sort.Ints(indexes)
	return indexes
}

func parseDayKey(key string) (int, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	if !strings.HasPrefix(key, dayKeyPrefix) {
		return 0, false
	}
	day, err := strconv.Atoi(strings.TrimPrefix(key, dayKeyPrefix))
	if err != nil || day < 1 {
		return 0, false
	}
	return day, true
}
