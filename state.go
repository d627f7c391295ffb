package formkit

// State is the type-erased view of one field snapshot held by a form. Field
// and Group implement it; custom field kinds participate in a form by
// implementing it too.
//
// Implementations must behave as immutable values: Touch and Revalidate
// return derived snapshots and never modify the receiver. A snapshot handed
// to a reader keeps describing the same instant forever.
type State interface {
	// Label returns the human-facing field label.
	Label() string

	// Err returns the message recorded by the last validation pass, nil
	// while the field passes.
	Err() *Message

	// Touched reports whether the user has interacted with the field.
	Touched() bool

	// Any returns the untyped current value: the field value itself, or the
	// selected payloads for an option group.
	Any() any

	// Refs returns the names of other fields this snapshot's rules read.
	Refs() []string

	// Touch returns a derived snapshot with the touched flag set. The
	// validation state carries over unchanged.
	Touch(touched bool) State

	// Revalidate returns a derived snapshot whose message is recomputed
	// against ctx. Value and touched carry over unchanged.
	Revalidate(ctx Context) State
}
