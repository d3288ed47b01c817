package randomness

// SampleSet is an ordered sample sequence together with where it came from
type SampleSet struct {
	Source  string    `json:"source"`
	Column  string    `json:"column,omitempty"`
	Values  []float64 `json:"-"`
	Dropped int       `json:"dropped"`
}

// Len returns the number of usable samples
func (s *SampleSet) Len() int {
	return len(s.Values)
}
