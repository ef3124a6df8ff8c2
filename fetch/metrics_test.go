package fetch

import (
	"sync"
	"testing"
)

func TestCollector_Counts(t *testing.T) {
	c := NewCollector()
	c.IncRequests()
	c.IncRequests()
	c.IncSuccesses()
	c.IncRetries()
	c.IncFailure("server")
	c.IncFailure("server")
	c.IncFailure("timeout")

	snap := c.Snapshot()
	if snap.Requests != 2 {
		t.Errorf("Requests = %d, want 2", snap.Requests)
	}
	if snap.Successes != 1 {
		t.Errorf("Successes = %d, want 1", snap.Successes)
	}
	if snap.Retries != 1 {
		t.Errorf("Retries = %d, want 1", snap.Retries)
	}
	if snap.Failures["server"] != 2 || snap.Failures["timeout"] != 1 {
		t.Errorf("Failures = %v", snap.Failures)
	}
}

func TestCollector_SnapshotIsolation(t *testing.T) {
	c := NewCollector()
	c.IncFailure("network")

	snap := c.Snapshot()
	snap.Failures["network"] = 99

	if got := c.Snapshot().Failures["network"]; got != 1 {
		t.Errorf("snapshot mutation leaked into collector: %d", got)
	}
}

func TestCollector_NilSafe(t *testing.T) {
	var c *Collector
	c.IncRequests()
	c.IncSuccesses()
	c.IncRetries()
	c.IncFailure("server")

	snap := c.Snapshot()
	if snap.Requests != 0 || snap.Failures == nil {
		t.Errorf("nil collector snapshot = %+v", snap)
	}
}

func TestCollector_ConcurrentIncrements(t *testing.T) {
	c := NewCollector()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.IncRequests()
			}
		}()
	}
	wg.Wait()

	if got := c.Snapshot().Requests; got != 1000 {
		t.Errorf("Requests = %d, want 1000", got)
	}
}
