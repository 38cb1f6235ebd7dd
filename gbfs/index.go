package gbfs

// StationIndex keeps stations in feed order with lookup by short name.
// It is read-only once built and safe for concurrent readers.
type StationIndex struct {
	Stations    []Station
	byShortName map[string]int
}

// NewStationIndex indexes stations. When short names repeat, lookups
// return the first occurrence; All still returns every entry.
func NewStationIndex(stations []Station) *StationIndex {
	idx := &StationIndex{Stations: stations}
	idx.reindex()
	return idx
}

func (s *StationIndex) reindex() {
	s.byShortName = make(map[string]int, len(s.Stations))
	for i, st := range s.Stations {
		if _, ok := s.byShortName[st.ShortName]; !ok {
			s.byShortName[st.ShortName] = i
		}
	}
}

// All returns the stations in feed order. Callers must not modify the slice.
func (s *StationIndex) All() []Station { return s.Stations }

// Len returns the number of stations.
func (s *StationIndex) Len() int { return len(s.Stations) }

// Get looks a station up by short name.
func (s *StationIndex) Get(shortName string) (Station, bool) {
	i, ok := s.byShortName[shortName]
	if !ok {
		return Station{}, false
	}
	return s.Stations[i], true
}

// Has reports whether shortName is a known station.
func (s *StationIndex) Has(shortName string) bool {
	_, ok := s.byShortName[shortName]
	return ok
}
