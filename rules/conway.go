package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

	alive, neighbors < 2 or > 3 -> dead
	alive, neighbors 2 or 3     -> alive
	dead, neighbors == 3        -> alive
	otherwise                   -> unchanged
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	switch {
	case alive && (neighbors < 2 || neighbors > 3):
		return false
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case !alive && neighbors == 3:
		return true
	default:
		// Dead cells without exactly three neighbors keep their state.
		return alive
	}
}
