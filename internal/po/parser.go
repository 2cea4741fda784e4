package po

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

type field uint8

const (
	fieldComment field = iota
	fieldCtxt
	fieldID
	fieldIDPlural
	fieldStr
)

// Parser reads PO entries from raw file bytes. Entries are separated by
// empty lines. The header entry, once parsed, provides the language,
// the charset used to decode subsequent strings, and the plural count.
type Parser struct {
	data []byte

	// general info parsed in the header
	Language     string
	LanguageCode string
	Country      string
	NPlurals     uint32

	// internal state
	encoding      encoding.Encoding
	encodingName  string
	offset        int
	lineNumber    uint32
	nextLine      uint32
	field         field
	strIndex      uint32
	encodingError bool
}

// NewParser creates a parser over the given bytes.
func NewParser(data []byte) *Parser {
	return &Parser{
		data:       data,
		lineNumber: 1,
		nextLine:   1,
	}
}

// EncodingName returns the name of the charset declared in the header,
// or "UTF-8" when none was recognized.
func (p *Parser) EncodingName() string {
	if p.encodingName != "" {
		return p.encodingName
	}
	return "UTF-8"
}

// readLine returns the next line from the input data, updating the
// parser's location. The trailing newline is not included.
func (p *Parser) readLine() ([]byte, bool) {
	if p.offset >= len(p.data) {
		return nil, false
	}
	start := p.offset
	end := bytes.IndexByte(p.data[start:], '\n')
	if end < 0 {
		end = len(p.data)
	} else {
		end += start
	}
	p.offset = end + 1
	p.nextLine++
	return p.data[start:end], true
}

// Next returns the next entry, or nil when the input is exhausted.
func (p *Parser) Next() *Entry {
	entry := NewEntry(p.nextLine)
	p.lineNumber = p.nextLine
	p.field = fieldComment
	p.encodingError = false
	started := false
	for {
		line, ok := p.readLine()
		if !ok {
			break
		}
		if len(line) == 0 {
			if started {
				p.finishEntry(entry)
				return entry
			}
			entry.Line = p.nextLine
			p.lineNumber = p.nextLine
			continue
		}
		started = true
		switch {
		case bytes.HasPrefix(line, []byte("#,")):
			parseKeywords(line[2:], entry)
		case bytes.HasPrefix(line, []byte("#=")):
			parseKeywords(line[2:], entry)
		case bytes.HasPrefix(line, []byte("#~ ")):
			// Obsolete entry with a message (start or continued).
			entry.Obsolete = true
			p.parseMessage(line[3:], entry)
		case bytes.HasPrefix(line, []byte("msg")) || bytes.HasPrefix(line, []byte("\"")):
			p.parseMessage(line, entry)
		}
		p.lineNumber = p.nextLine
	}
	if started {
		p.finishEntry(entry)
		return entry
	}
	return nil
}

func (p *Parser) finishEntry(entry *Entry) {
	entry.EncodingError = p.encodingError
	entry.unescapeStrings()
	p.parseHeader(entry)
}

// parseHeader extracts language, charset and plural information from the
// header entry (empty msgid with a non-empty translation).
func (p *Parser) parseHeader(entry *Entry) {
	if entry.Msgid == nil || entry.Msgid.Value != "" {
		return
	}
	msg, ok := entry.Msgstr[0]
	if !ok || msg.Value == "" {
		return
	}
	for _, line := range strings.Split(msg.Value, "\n") {
		keyword, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(keyword)) {
		case "language":
			p.Language = strings.TrimSpace(value)
			if pos := strings.IndexByte(value, '_'); pos >= 0 {
				p.LanguageCode = strings.TrimSpace(value[:pos])
				p.Country = strings.TrimSpace(value[pos+1:])
			} else {
				p.LanguageCode = p.Language
			}
		case "content-type":
			pos := strings.Index(value, "charset=")
			if pos < 0 {
				continue
			}
			charset := value[pos+8:]
			if end := strings.IndexFunc(charset, func(r rune) bool {
				return r == ';' || r == ' ' || r == '\t'
			}); end >= 0 {
				charset = charset[:end]
			}
			enc, err := htmlindex.Get(charset)
			if err != nil {
				continue
			}
			// Optimization: if charset is UTF-8, we don't need to decode
			// strings, only validate them.
			if canonical, nameErr := htmlindex.Name(enc); nameErr == nil && canonical == "utf-8" {
				continue
			}
			p.encoding = enc
			if name, nameErr := ianaindex.MIME.Name(enc); nameErr == nil {
				p.encodingName = name
			} else {
				p.encodingName = charset
			}
		case "plural-forms":
			pos := strings.Index(value, "nplurals=")
			if pos < 0 {
				continue
			}
			digits := value[pos+9:]
			end := 0
			for end < len(digits) && digits[end] >= '0' && digits[end] <= '9' {
				end++
			}
			if n, err := strconv.ParseUint(digits[:end], 10, 32); err == nil {
				p.NPlurals = uint32(n)
			}
		}
	}
}

// parseKeywords adds keywords from a comment line, updating flags and
// format as needed.
func parseKeywords(line []byte, entry *Entry) {
	for _, raw := range bytes.Split(line, []byte(",")) {
		kw := strings.TrimSpace(string(raw))
		switch {
		case kw == "fuzzy":
			entry.Fuzzy = true
		case kw == "noqa":
			entry.Noqa = true
		case strings.HasPrefix(kw, "noqa:"):
			for _, name := range strings.Split(kw[len("noqa:"):], ";") {
				entry.NoqaRules = append(entry.NoqaRules, strings.TrimSpace(name))
			}
		case kw == "no-wrap":
			entry.Nowrap = true
		case strings.HasSuffix(kw, "-format"):
			entry.Format = kw[:len(kw)-len("-format")]
		}
		entry.Keywords = append(entry.Keywords, kw)
	}
}

// extractString returns the text between the first and last double quote
// of the line, decoded with the header charset when one is declared.
func (p *Parser) extractString(line []byte) string {
	start := bytes.IndexByte(line, '"')
	end := bytes.LastIndexByte(line, '"')
	if start < 0 || start == end {
		return ""
	}
	raw := line[start+1 : end]
	if p.encoding != nil {
		decoded, err := p.encoding.NewDecoder().Bytes(raw)
		if err != nil || bytes.ContainsRune(decoded, utf8.RuneError) {
			p.encodingError = true
		}
		if decoded != nil {
			return string(decoded)
		}
		return ""
	}
	if utf8.Valid(raw) {
		return string(raw)
	}
	p.encodingError = true
	return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
}

// parseMessage handles a msgctxt/msgid/msgid_plural/msgstr line or a
// continued string line, updating the current field of the entry.
func (p *Parser) parseMessage(line []byte, entry *Entry) {
	switch {
	case bytes.HasPrefix(line, []byte("msgctxt")):
		p.field = fieldCtxt
		entry.Msgctxt = NewMessage(p.lineNumber, p.extractString(line))
	case bytes.HasPrefix(line, []byte("msgid_plural")):
		p.field = fieldIDPlural
		entry.MsgidPlural = NewMessage(p.lineNumber, p.extractString(line))
	case bytes.HasPrefix(line, []byte("msgid")):
		p.field = fieldID
		entry.Msgid = NewMessage(p.lineNumber, p.extractString(line))
	case bytes.HasPrefix(line, []byte("msgstr[")):
		idxEnd := bytes.IndexByte(line, ']')
		if idxEnd < 0 {
			return
		}
		idx, err := strconv.ParseUint(string(line[7:idxEnd]), 10, 32)
		if err != nil {
			return
		}
		p.field = fieldStr
		p.strIndex = uint32(idx)
		entry.Msgstr[uint32(idx)] = NewMessage(p.lineNumber, p.extractString(line))
	case bytes.HasPrefix(line, []byte("msgstr")):
		p.field = fieldStr
		p.strIndex = 0
		entry.Msgstr[0] = NewMessage(p.lineNumber, p.extractString(line))
	case bytes.HasPrefix(line, []byte("\"")):
		switch p.field {
		case fieldComment:
		case fieldCtxt:
			entry.Msgctxt.Append(p.extractString(line))
		case fieldID:
			entry.Msgid.Append(p.extractString(line))
		case fieldIDPlural:
			entry.MsgidPlural.Append(p.extractString(line))
		case fieldStr:
			entry.Msgstr[p.strIndex].Append(p.extractString(line))
		}
	}
}
