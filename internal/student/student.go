package student

import (
	"fmt"
	"strings"
)

// Student is the admission record processed by the pipeline. Fields are set at
// construction and never mutated afterward; stages receive the record by
// reference and must not retain it.
type Student struct {
	// Name identifies the student; unique within a roster.
	Name string
	// Distance is how far the student lives from the hostel, in domain units.
	Distance int
	// FeePaid reports whether the admission fee has been settled.
	FeePaid bool
}

// New constructs a Student with a whitespace-trimmed name.
func New(name string, distance int, feePaid bool) *Student {
	return &Student{
		Name:     strings.TrimSpace(name),
		Distance: distance,
		FeePaid:  feePaid,
	}
}

func (s *Student) String() string {
	if s == nil {
		return "<nil>"
	}
	fee := "fee unpaid"
	if s.FeePaid {
		fee = "fee paid"
	}
	return fmt.Sprintf("%s (distance %d, %s)", s.Name, s.Distance, fee)
}
