package services

// clampTake keeps a page size inside (0, limit].
func clampTake(take int, limit int) int {
	if take <= 0 || take > limit {
		return limit
	}
	return take
}
