package roster_test

import (
	"testing"

	"warden/internal/roster"
)

func TestParseStatus(t *testing.T) {
	status, ok := roster.ParseStatus("  Allocated ")
	if !ok || status != roster.StatusAllocated {
		t.Fatalf("unexpected parse result: %s %v", status, ok)
	}
	if _, ok := roster.ParseStatus("bogus"); ok {
		t.Fatal("expected unknown status to fail")
	}
}

func TestStatusDisplayLabel(t *testing.T) {
	if got := roster.StatusRegistered.DisplayLabel(); got != "Registered" {
		t.Fatalf("unexpected label: %q", got)
	}
}

func TestRecordStudent(t *testing.T) {
	record := &roster.Record{Name: "John Doe", Distance: 15, FeePaid: true}
	st := record.Student()
	if st.Name != "John Doe" || st.Distance != 15 || !st.FeePaid {
		t.Fatalf("unexpected student: %+v", st)
	}
}
