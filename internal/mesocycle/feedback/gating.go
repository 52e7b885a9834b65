package feedback

// GroupsNeedingPrompt returns the muscle groups of today's template that need a soreness check,
// in template order: the ones trained on any earlier (week, day) of the cycle.
// trainedBefore holds those groups. The first day of the cycle never prompts.
func GroupsNeedingPrompt(week, day int, todaysGroups, trainedBefore []string) []string {
	if week <= 1 && day <= 1 {
		return nil
	}

	trained := make(map[string]bool, len(trainedBefore))
	for _, g := range trainedBefore {
		trained[g] = true
	}

	var groups []string
	seen := make(map[string]bool, len(todaysGroups))
	for _, g := range todaysGroups {
		if seen[g] || !trained[g] {
			continue
		}
		seen[g] = true
		groups = append(groups, g)
	}
	return groups
}
