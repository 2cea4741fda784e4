package po

// Message is a single string of a PO entry (msgctxt, msgid, msgid_plural
// or one msgstr), together with the line it starts on.
type Message struct {
	Line  uint32
	Value string
}

// NewMessage creates a message with the given line and value.
func NewMessage(line uint32, value string) *Message {
	return &Message{Line: line, Value: value}
}

// Append adds continuation text to the message value.
func (m *Message) Append(additional string) {
	if m == nil {
		return
	}
	m.Value += additional
}
