package usecase

// coalesce returns the first non-empty string for partial updates.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

// coalesceInt returns newVal unless it is zero, for partial updates.
func (uc *implUseCase) coalesceInt(newVal, existing int) int {
	if newVal != 0 {
		return newVal
	}
	return existing
}
