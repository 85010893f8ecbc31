package internal

// ReconstructPath walks parent links from current back to the root and
// returns the ids root first. parentOf reports false at the root.
func ReconstructPath(current int, parentOf func(id int) (int, bool)) []int {
	path := []int{current}
	for {
		previous, ok := parentOf(current)
		if !ok {
			break
		}
		path = append(path, previous)
		current = previous
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
