package formkit

// Message describes a single validation failure with translation support.
// Text holds the formatted default wording; Key and Values carry what a
// translation catalog needs to render the failure in another language.
//
// Messages are built once by rule constructors and never mutated afterwards,
// so snapshots may share them freely.
type Message struct {
	Text   string
	Key    string
	Values map[string]any
}

// Equal reports whether two messages describe the same failure. Values
// derives deterministically from rule configuration and carries no extra
// identity, so only Text and Key participate.
func (m Message) Equal(other Message) bool {
	return m.Text == other.Text && m.Key == other.Key
}

// equalMessagePtr compares optional messages, treating nil as "no failure".
func equalMessagePtr(a, b *Message) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
