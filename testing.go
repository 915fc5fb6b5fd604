package hxstyle

import "fmt"

// RecordingMaterializer is a Materializer for tests. It counts invocations
// and keeps every input, so tests can assert that a session materialized a
// composition at most once:
//
//	rec := &hxstyle.RecordingMaterializer{}
//	sess := hxstyle.NewSession(rec.Materialize)
//	// ... render twice with the same composition ...
//	if rec.Calls != 1 {
//	    t.Fatalf("materialized %d times, want 1", rec.Calls)
//	}
//
// When Inner is nil, Materialize returns synthetic class names "m1", "m2",
// ... in invocation order; set Inner to delegate (for example to a Sheet)
// while still recording.
type RecordingMaterializer struct {
	Inner  Materializer
	Calls  int
	Inputs []CSS
}

// Materialize records the call and produces a class name.
func (m *RecordingMaterializer) Materialize(obj CSS) string {
	m.Calls++
	m.Inputs = append(m.Inputs, obj)
	if m.Inner != nil {
		return m.Inner(obj)
	}
	return fmt.Sprintf("m%d", m.Calls)
}
