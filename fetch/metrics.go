package fetch

import "sync"

// Snapshot is an immutable point-in-time view of a client's request
// counters. Returned by Collector.Snapshot(). Safe to read
// concurrently after creation.
type Snapshot struct {
	// Requests is the number of attempts issued, including retries.
	Requests int64
	// Successes is the number of attempts that returned a 2xx body.
	Successes int64
	// Retries is the number of re-sends after a retryable failure.
	Retries int64
	// Failures is the number of failed attempts by taxonomy kind.
	Failures map[string]int64
}

// Collector accumulates request counters for one client.
// Thread-safe via sync.Mutex. All increment methods are nil-receiver
// safe.
type Collector struct {
	mu sync.Mutex

	requests  int64
	successes int64
	retries   int64
	failures  map[string]int64
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{failures: make(map[string]int64)}
}

// IncRequests records one issued attempt.
func (c *Collector) IncRequests() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests++
}

// IncSuccesses records one successful attempt.
func (c *Collector) IncSuccesses() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.successes++
}

// IncRetries records one retry.
func (c *Collector) IncRetries() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.retries++
}

// IncFailure records one failed attempt under its taxonomy kind.
func (c *Collector) IncFailure(kind string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failures == nil {
		c.failures = make(map[string]int64)
	}
	c.failures[kind]++
}

// Snapshot returns an immutable copy of the current counters.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{Failures: map[string]int64{}}
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	failures := make(map[string]int64, len(c.failures))
	for k, v := range c.failures {
		failures[k] = v
	}

	return Snapshot{
		Requests:  c.requests,
		Successes: c.successes,
		Retries:   c.retries,
		Failures:  failures,
	}
}
