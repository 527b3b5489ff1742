package stage

import (
	"errors"
	"fmt"

	"warden/internal/student"
)

// Failure is the expected, recoverable outcome of a failing admission check.
// It carries the student identity and the violated rule so callers can render
// a user-facing message without parsing error strings.
type Failure struct {
	Student string
	Rule    string
	Reason  string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Rule, f.Reason)
}

// Fail constructs a Failure bound to the student being validated.
func Fail(st *student.Student, rule, reason string) *Failure {
	name := ""
	if st != nil {
		name = st.Name
	}
	return &Failure{Student: name, Rule: rule, Reason: reason}
}

// AsFailure unwraps err into a Failure when it represents an expected
// validation outcome rather than a defect.
func AsFailure(err error) (*Failure, bool) {
	var failure *Failure
	if errors.As(err, &failure) {
		return failure, true
	}
	return nil, false
}
