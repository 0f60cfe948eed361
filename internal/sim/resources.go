package sim

import "fmt"

// Resources maps shared buffer names to the slices that back them. Names
// follow the "Owner:quantity" convention, e.g. "EMField:E". The slices are
// shared by reference: the publishing module mutates them in place each
// step, so a subscriber holding a slice always sees the current values.
type Resources map[string][]float64

// Add registers a buffer under name. Registering the same name twice is an
// error regardless of the slice involved.
func (r Resources) Add(name string, buf []float64) error {
	if _, ok := r[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateResource, name)
	}
	r[name] = buf
	return nil
}

// Get returns the buffer registered under name.
func (r Resources) Get(name string) ([]float64, error) {
	buf, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrResourceMissing, name)
	}
	return buf, nil
}

func (r Resources) merge(other Resources) error {
	for name, buf := range other {
		if err := r.Add(name, buf); err != nil {
			return err
		}
	}
	return nil
}
