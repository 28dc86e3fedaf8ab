package segment

// Strategy is one named attempt in a fallback chain.
type Strategy[T any] struct {
	Name string
	Try  func() (T, bool)
}

// FirstSuccess runs the strategies in order and returns the result of the
// first one that succeeds. Later strategies are never run once one succeeds.
func FirstSuccess[T any](chain ...Strategy[T]) (result T, name string, ok bool) {
	for _, s := range chain {
		if s.Try == nil {
			continue
		}
		if r, ok := s.Try(); ok {
			return r, s.Name, true
		}
	}
	var zero T
	return zero, "", false
}
