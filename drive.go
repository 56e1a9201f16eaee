package sinkline

// FromSlice pushes each value in values through consumer in order and
// collects the results.
func FromSlice[A, R any](values []A, consumer Consumer1[A, R]) []R {
	results := make([]R, 0, len(values))
	for _, v := range values {
		results = append(results, consumer(v))
	}
	return results
}
