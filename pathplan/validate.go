package pathplan

func validate(distances, fuels []uint32) error {
	if len(distances) == 0 || len(fuels) == 0 {
		return ErrEmptyInput
	}
	if len(distances) != len(fuels) {
		return ErrMismatchedLengths
	}
	for i := 1; i < len(distances); i++ {
		if distances[i] <= distances[i-1] {
			return ErrNotAscending
		}
	}
	return nil
}
