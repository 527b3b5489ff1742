package roster

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"warden/internal/student"
)

// Status represents the lifecycle of a roster record.
type Status string

const (
	StatusRegistered Status = "registered"
	StatusValidating Status = "validating"
	StatusAllocated  Status = "allocated"
	StatusRejected   Status = "rejected"
)

var allStatuses = []Status{
	StatusRegistered,
	StatusValidating,
	StatusAllocated,
	StatusRejected,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(allStatuses))
	for _, status := range allStatuses {
		set[status] = struct{}{}
	}
	return set
}()

// AllStatuses returns the ordered list of known statuses.
func AllStatuses() []Status {
	cp := make([]Status, len(allStatuses))
	copy(cp, allStatuses)
	return cp
}

// ParseStatus converts a string into a known Status.
func ParseStatus(value string) (Status, bool) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := statusSet[normalized]
	return normalized, ok
}

var titleCaser = cases.Title(language.Und)

// DisplayLabel returns the status formatted for CLI presentation.
func (s Status) DisplayLabel() string {
	if s == "" {
		return ""
	}
	return titleCaser.String(strings.ReplaceAll(string(s), "_", " "))
}

// Record represents a roster entry persisted in SQLite.
type Record struct {
	ID           int64
	Name         string
	Distance     int
	FeePaid      bool
	Status       Status
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Student materializes the immutable entity handed to pipeline stages.
func (r *Record) Student() *student.Student {
	return student.New(r.Name, r.Distance, r.FeePaid)
}

// SetRejected marks the record rejected with the given reason.
func (r *Record) SetRejected(reason string) {
	r.Status = StatusRejected
	r.ErrorMessage = reason
}

// SetAllocated marks the record allocated and clears any previous rejection.
func (r *Record) SetAllocated() {
	r.Status = StatusAllocated
	r.ErrorMessage = ""
}
