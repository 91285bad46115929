// -*- tab-width:2 -*-

package copula

// Results is an ordered mapping of column names to values, the shape
// export code writes as one column per name.
type Results struct {
	names []string
	cols  map[string][]float64
}

// NewResults returns an empty Results.
func NewResults() *Results {
	return &Results{cols: make(map[string][]float64)}
}

// Add sets a column, keeping the first insertion order.
func (r *Results) Add(name string, col []float64) {
	if _, ok := r.cols[name]; !ok {
		r.names = append(r.names, name)
	}

	r.cols[name] = col
}

// Get returns a column.
func (r *Results) Get(name string) ([]float64, bool) {
	col, ok := r.cols[name]

	return col, ok
}

// Columns returns the column names in insertion order.
func (r *Results) Columns() []string {
	return append([]string(nil), r.names...)
}

// Rows is the length of the longest column.
func (r *Results) Rows() int {
	n := 0
	for _, c := range r.cols {
		n = max(n, len(c))
	}

	return n
}
