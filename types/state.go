package types

// LoadState is the lifecycle state of one structure-load session.
//
// Transitions: Idle -> Fetching -> Validating -> Parsing -> Ready on
// success; Validating -> Failed if the payload is malformed;
// Fetching -> Failed if a fetch fails. Ready and Failed are terminal
// for that load attempt; a new selection always restarts at Idle and
// discards prior residue data.
type LoadState string

const (
	StateIdle       LoadState = "idle"
	StateFetching   LoadState = "fetching"
	StateValidating LoadState = "validating"
	StateParsing    LoadState = "parsing"
	StateReady      LoadState = "ready"
	StateFailed     LoadState = "failed"
)

// Terminal reports whether the state ends a load attempt.
func (s LoadState) Terminal() bool {
	return s == StateReady || s == StateFailed
}
