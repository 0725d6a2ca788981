package ies

import "fmt"

// OrderError reports the first place an angle list decreases.
type OrderError struct {
	Axis     string
	Index    int
	Previous float64
	Next     float64
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("ies: %s angles decrease at index %d (%g after %g)", e.Axis, e.Index, e.Next, e.Previous)
}

// CheckMonotonic reports whether both angle lists are non-decreasing.
// The parser accepts unordered files; callers decide what to do with them.
func CheckMonotonic(doc *Document) error {
	if err := checkAxis("vertical", doc.VerticalAngles()); err != nil {
		return err
	}
	return checkAxis("horizontal", doc.HorizontalAngles())
}

func checkAxis(axis string, angles []float64) error {
	for i := 1; i < len(angles); i++ {
		if angles[i] < angles[i-1] {
			return &OrderError{Axis: axis, Index: i, Previous: angles[i-1], Next: angles[i]}
		}
	}
	return nil
}
