package performance

// PickPrevious chooses the record today's prescription is based on.
// history must hold the earlier occurrences of one exercise, most recent first.
// A record from the same day index wins over more recent ones from other days,
// so a lift trained on several days of the week progresses from its own day.
func PickPrevious(history []Record, day int) (*Record, bool) {
	if len(history) == 0 {
		return nil, false
	}
	for i := range history {
		if history[i].Day == day {
			return &history[i], true
		}
	}
	return &history[0], true
}
