package highway

// AddStation inserts a new station at distance with the given initial cars.
// It reports false (no-op) if a station already occupies that distance.
//
// Complexity: O(log n) to locate the insertion point, O(n) worst case to
// shift the slice.
func (s *Store) AddStation(distance uint32, initialFuels []uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.stations) > 0 {
		idx := floorIndex(s.stations, distance)
		if s.stations[idx].Distance == distance {
			return false
		}
	}

	idx := insertionIndex(s.stations, distance)

	station := Station{Distance: distance}
	if len(initialFuels) > 0 {
		station.Cars = append(station.Cars, initialFuels...)
		for _, f := range initialFuels {
			if f > station.MaxFuel {
				station.MaxFuel = f
			}
		}
	}

	s.stations = append(s.stations, Station{})
	copy(s.stations[idx+1:], s.stations[idx:])
	s.stations[idx] = station

	return true
}

// RemoveStation removes the station at distance, reporting whether one was
// found and removed.
//
// Complexity: O(log n) to locate, O(n) worst case to shift the slice.
func (s *Store) RemoveStation(distance uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.stations) == 0 {
		return false
	}

	idx := floorIndex(s.stations, distance)
	if s.stations[idx].Distance != distance {
		return false
	}

	s.stations = append(s.stations[:idx], s.stations[idx+1:]...)

	return true
}

// FindStation looks up the station at distance, returning its address and
// true on success. The returned pointer is only valid until the next
// mutating call on s, since insert/remove may reallocate or shift the
// backing slice.
//
// Complexity: O(log n).
func (s *Store) FindStation(distance uint32) (*Station, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.stations) == 0 {
		return nil, false
	}

	idx := floorIndex(s.stations, distance)
	if s.stations[idx].Distance != distance {
		return nil, false
	}

	return &s.stations[idx], true
}

// findIndex is the unlocked, internal counterpart of FindStation; callers
// must hold s.mu (read or write) already.
func (s *Store) findIndex(distance uint32) (int, bool) {
	if len(s.stations) == 0 {
		return 0, false
	}

	idx := floorIndex(s.stations, distance)
	if s.stations[idx].Distance != distance {
		return 0, false
	}

	return idx, true
}
