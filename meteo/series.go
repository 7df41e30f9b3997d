package meteo

// SeriesValue constrains the storage representations available for
// periodical data. Continuous metrics default to float32 to bound memory
// across large multi-day tables; discrete codes use uint8 and time-like or
// enumerated text fields use string.
type SeriesValue interface {
	~float32 | ~float64 | ~int32 | ~uint8 | ~string
}

// Series is an ordered sequence of (timestamp, value) pairs in source
// order. Index and Values are always the same length.
type Series[T SeriesValue] struct {
	IndexName string
	Index     []string
	Values    []T
}

// Len returns the number of points in the series.
func (s Series[T]) Len() int { return len(s.Index) }

// At returns the timestamp and value at position i.
func (s Series[T]) At(i int) (string, T) { return s.Index[i], s.Values[i] }

// Pairs re-flattens the series into its aligned timestamp and value slices.
func (s Series[T]) Pairs() ([]string, []T) { return s.Index, s.Values }

// Bundle is an ordered mapping from display labels to scalar readings
// captured at one instant, positionally aligned to the requested metric
// order.
type Bundle struct {
	Labels []string
	Values []float64
}

// Get returns the reading for a display label.
func (b Bundle) Get(label string) (float64, bool) {
	for i, candidate := range b.Labels {
		if candidate == label {
			return b.Values[i], true
		}
	}
	return 0, false
}

// Table pairs a timestamp index with N aligned value columns renamed from
// wire metric names to caller-supplied display labels.
type Table struct {
	IndexName string
	Index     []string
	Columns   []string
	// Cells[i] holds the column labeled Columns[i], aligned with Index.
	Cells [][]float32
}

// Column returns the values of the column with the given display label.
func (t Table) Column(label string) ([]float32, bool) {
	for i, candidate := range t.Columns {
		if candidate == label {
			return t.Cells[i], true
		}
	}
	return nil, false
}

// CodeTable pairs weather codes with their looked-up descriptions.
type CodeTable struct {
	IndexName    string
	Index        []string
	Codes        []uint8
	Descriptions []string
}
