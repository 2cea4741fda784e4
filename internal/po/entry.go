package po

import (
	"fmt"
	"sort"
)

// Entry is one entry of a PO file: the header, a singular message, or a
// message with plural forms. Msgstr is keyed by the plural index.
type Entry struct {
	Line          uint32
	Keywords      []string
	Fuzzy         bool
	Obsolete      bool
	Noqa          bool
	NoqaRules     []string
	Nowrap        bool
	Format        string
	EncodingError bool
	Msgctxt       *Message
	Msgid         *Message
	MsgidPlural   *Message
	Msgstr        map[uint32]*Message
}

// POLine is a reconstructed line of a PO file.
type POLine struct {
	Number uint32
	Text   string
}

// NewEntry creates an empty entry starting at the given line.
func NewEntry(line uint32) *Entry {
	return &Entry{
		Line:   line,
		Msgstr: make(map[uint32]*Message),
	}
}

// IsHeader reports whether this entry is the header entry
// (msgid is set and is an empty string).
func (e *Entry) IsHeader() bool {
	return e.Msgid != nil && e.Msgid.Value == ""
}

// HasPluralForm reports whether this entry has a plural form (msgid_plural is set).
func (e *Entry) HasPluralForm() bool {
	return e.MsgidPlural != nil
}

// IsTranslated reports whether this entry has at least one non-empty
// translation string (even if the entry is marked as fuzzy).
func (e *Entry) IsTranslated() bool {
	for _, msg := range e.Msgstr {
		if msg.Value != "" {
			return true
		}
	}
	return false
}

// MsgstrIndices returns the plural indices present in Msgstr, sorted.
func (e *Entry) MsgstrIndices() []uint32 {
	indices := make([]uint32, 0, len(e.Msgstr))
	for idx := range e.Msgstr {
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })
	return indices
}

// HasNoqaRule reports whether the rule name is listed in a "noqa:" keyword.
func (e *Entry) HasNoqaRule(name string) bool {
	for _, r := range e.NoqaRules {
		if r == name {
			return true
		}
	}
	return false
}

// PoLines converts this entry back to PO file lines. Each message is
// rendered on its starting line with escaped content.
func (e *Entry) PoLines() []POLine {
	lines := make([]POLine, 0, 5)
	prefix := ""
	if e.Obsolete {
		prefix = "#~ "
	}
	if e.Msgctxt != nil {
		lines = append(lines, POLine{
			Number: e.Msgctxt.Line,
			Text:   fmt.Sprintf("%smsgctxt \"%s\"", prefix, Escape(e.Msgctxt.Value)),
		})
	}
	if e.Msgid != nil {
		lines = append(lines, POLine{
			Number: e.Msgid.Line,
			Text:   fmt.Sprintf("%smsgid \"%s\"", prefix, Escape(e.Msgid.Value)),
		})
	}
	if e.MsgidPlural != nil {
		lines = append(lines, POLine{
			Number: e.MsgidPlural.Line,
			Text:   fmt.Sprintf("%smsgid_plural \"%s\"", prefix, Escape(e.MsgidPlural.Value)),
		})
	}
	for idx := uint32(0); ; idx++ {
		msg, ok := e.Msgstr[idx]
		if !ok {
			break
		}
		if e.HasPluralForm() || len(e.Msgstr) > 1 {
			lines = append(lines, POLine{
				Number: msg.Line,
				Text:   fmt.Sprintf("%smsgstr[%d] \"%s\"", prefix, idx, Escape(msg.Value)),
			})
		} else {
			lines = append(lines, POLine{
				Number: msg.Line,
				Text:   fmt.Sprintf("%smsgstr \"%s\"", prefix, Escape(msg.Value)),
			})
		}
	}
	return lines
}

func (e *Entry) unescapeStrings() {
	if e.Msgctxt != nil {
		e.Msgctxt.Value = Unescape(e.Msgctxt.Value)
	}
	if e.Msgid != nil {
		e.Msgid.Value = Unescape(e.Msgid.Value)
	}
	if e.MsgidPlural != nil {
		e.MsgidPlural.Value = Unescape(e.MsgidPlural.Value)
	}
	for idx := uint32(0); ; idx++ {
		msg, ok := e.Msgstr[idx]
		if !ok {
			break
		}
		msg.Value = Unescape(msg.Value)
	}
}
