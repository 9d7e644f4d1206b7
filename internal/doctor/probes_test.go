package doctor

import "testing"

func TestNewSystemChecks(t *testing.T) {
	checks := NewSystemChecks()

	if len(checks) != 5 {
		t.Fatalf("expected 5 system checks, got %d", len(checks))
	}

	names := map[string]bool{}
	for _, check := range checks {
		if check.Category() != "SYSTEM" {
			t.Errorf("check %s has category %s, want SYSTEM", check.Name(), check.Category())
		}
		names[check.Name()] = true
	}

	for _, want := range []string{"cpu_probe", "memory_probe", "disk_probe", "network_probe", "process_probe"} {
		if !names[want] {
			t.Errorf("missing check %s", want)
		}
	}
}

func TestMemoryProbeCheck(t *testing.T) {
	check := &MemoryProbeCheck{}
	result := check.Run()

	// Reading memory counters should work on any supported platform.
	if result.Status == StatusFail {
		t.Errorf("memory probe failed: %s", result.Message)
	}
	if result.Message == "" {
		t.Error("expected a message")
	}
}

func TestCPUProbeCheck(t *testing.T) {
	check := &CPUProbeCheck{}
	result := check.Run()

	if result.Status == StatusFail {
		t.Errorf("cpu probe failed: %s", result.Message)
	}
}
