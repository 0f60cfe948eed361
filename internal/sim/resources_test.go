package sim

import (
	"errors"
	"testing"
)

func TestResourcesAddGet(t *testing.T) {
	r := make(Resources)
	buf := []float64{1, 2, 3}

	if err := r.Add("EMField:E", buf); err != nil {
		t.Fatal(err)
	}
	got, err := r.Get("EMField:E")
	if err != nil {
		t.Fatal(err)
	}
	if &got[0] != &buf[0] {
		t.Error("Get returned a buffer with different backing than Add stored")
	}

	if err := r.Add("EMField:E", make([]float64, 3)); !errors.Is(err, ErrDuplicateResource) {
		t.Errorf("expected ErrDuplicateResource, got %v", err)
	}
	if _, err := r.Get("absent"); !errors.Is(err, ErrResourceMissing) {
		t.Errorf("expected ErrResourceMissing, got %v", err)
	}
}
