package main

import (
	"strings"
	"testing"
)

func TestCLIRegisterAndAdmitFlow(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"register", "John", "Doe", "--distance", "15", "--paid"}, env.configPath)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	requireContains(t, out, "Registered John Doe")

	out, _, err = runCLI(t, []string{"register", "Jane", "--distance", "5", "--paid"}, env.configPath)
	if err != nil {
		t.Fatalf("register nearby: %v", err)
	}
	requireContains(t, out, "Registration refused")

	out, _, err = runCLI(t, []string{"register", "Late Payer", "--distance", "15"}, env.configPath)
	if err != nil {
		t.Fatalf("register unpaid: %v", err)
	}
	requireContains(t, out, "Registered Late Payer")

	out, _, err = runCLI(t, []string{"admit"}, env.configPath)
	if err != nil {
		t.Fatalf("admit: %v", err)
	}
	requireContains(t, out, "John Doe admitted and allocated a room")
	requireContains(t, out, "Late Payer rejected at payment")

	out, _, err = runCLI(t, []string{"show", "John", "Doe"}, env.configPath)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Allocated")

	out, _, err = runCLI(t, []string{"show", "Late Payer"}, env.configPath)
	if err != nil {
		t.Fatalf("show rejected: %v", err)
	}
	requireContains(t, out, "Rejected")
	requireContains(t, out, "has not paid the admission fee")
}

func TestCLIRegisterDuplicate(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"register", "John Doe", "--distance", "15", "--paid"}, env.configPath); err != nil {
		t.Fatalf("register: %v", err)
	}
	out, _, err := runCLI(t, []string{"register", "John Doe", "--distance", "20", "--paid"}, env.configPath)
	if err != nil {
		t.Fatalf("register duplicate: %v", err)
	}
	requireContains(t, out, "Registration refused")
	requireContains(t, out, "already registered")
}

func TestCLIAdmitEmptyRoster(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"admit"}, env.configPath)
	if err != nil {
		t.Fatalf("admit: %v", err)
	}
	requireContains(t, out, "No registered students awaiting admission")
}

func TestCLIAdmitNamedStudent(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"register", "Solo", "--distance", "15", "--paid"}, env.configPath); err != nil {
		t.Fatalf("register: %v", err)
	}
	out, _, err := runCLI(t, []string{"admit", "Solo"}, env.configPath)
	if err != nil {
		t.Fatalf("admit named: %v", err)
	}
	requireContains(t, out, "Solo admitted and allocated a room")

	// Re-admitting an allocated student is refused.
	if _, _, err := runCLI(t, []string{"admit", "Solo"}, env.configPath); err == nil {
		t.Fatal("expected error admitting an already allocated student")
	}
}

func TestCLIAdmitNotificationOutput(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"register", "Notified", "--distance", "15", "--paid"}, env.configPath); err != nil {
		t.Fatalf("register: %v", err)
	}
	out, _, err := runCLI(t, []string{"admit"}, env.configPath)
	if err != nil {
		t.Fatalf("admit: %v", err)
	}
	requireContains(t, out, "Room allocated: Notified")
	requireContains(t, out, "Admitted: Notified")

	if _, _, err := runCLI(t, []string{"register", "Quiet One", "--distance", "15", "--paid"}, env.configPath); err != nil {
		t.Fatalf("register: %v", err)
	}
	out, _, err = runCLI(t, []string{"admit", "--quiet"}, env.configPath)
	if err != nil {
		t.Fatalf("admit --quiet: %v", err)
	}
	if strings.Contains(out, "[console]") {
		t.Fatalf("expected --quiet to suppress observer output, got %q", out)
	}
}

func TestCLIRosterCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"register", "Alpha", "--distance", "15", "--paid"}, env.configPath); err != nil {
		t.Fatalf("register alpha: %v", err)
	}
	if _, _, err := runCLI(t, []string{"register", "Beta", "--distance", "20"}, env.configPath); err != nil {
		t.Fatalf("register beta: %v", err)
	}

	out, _, err := runCLI(t, []string{"roster", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("roster list: %v", err)
	}
	requireContains(t, out, "Alpha")
	requireContains(t, out, "Beta")

	out, _, err = runCLI(t, []string{"roster", "list", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("roster list --json: %v", err)
	}
	requireContains(t, out, `"name": "Alpha"`)
	requireContains(t, out, `"status": "registered"`)

	out, _, err = runCLI(t, []string{"roster", "show", "Beta", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("roster show --json: %v", err)
	}
	requireContains(t, out, `"fee_paid": false`)

	out, _, err = runCLI(t, []string{"roster", "status"}, env.configPath)
	if err != nil {
		t.Fatalf("roster status: %v", err)
	}
	requireContains(t, out, "Registered")

	out, _, err = runCLI(t, []string{"roster", "list", "--status", "allocated"}, env.configPath)
	if err != nil {
		t.Fatalf("roster list --status: %v", err)
	}
	requireContains(t, out, "Roster is empty")

	if _, _, err := runCLI(t, []string{"roster", "list", "--status", "bogus"}, env.configPath); err == nil {
		t.Fatal("expected error for unknown status filter")
	}

	out, _, err = runCLI(t, []string{"roster", "withdraw", "Alpha"}, env.configPath)
	if err != nil {
		t.Fatalf("roster withdraw: %v", err)
	}
	requireContains(t, out, "Withdrew Alpha")

	out, _, err = runCLI(t, []string{"roster", "clear"}, env.configPath)
	if err != nil {
		t.Fatalf("roster clear: %v", err)
	}
	requireContains(t, out, "Cleared 1 roster records")

	out, _, err = runCLI(t, []string{"roster", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("roster list after clear: %v", err)
	}
	requireContains(t, out, "Roster is empty")
}

func TestCLITestNotify(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"test-notify"}, env.configPath)
	if err != nil {
		t.Fatalf("test-notify: %v", err)
	}
	requireContains(t, out, "Notification system test")
	requireContains(t, out, "console only")
}

func TestCLIDoctor(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"doctor"}, env.configPath)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	requireContains(t, out, "Admission stages")
	requireContains(t, out, "proximity")
	requireContains(t, out, "payment")
	requireContains(t, out, "allocation")
	requireContains(t, out, "Roster database")
	requireContains(t, out, "integrity")
}
