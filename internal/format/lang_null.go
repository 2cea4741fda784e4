package format

// formatNull never detects format strings.
type formatNull struct{}

func (formatNull) NextChar(_ string, pos int) (int, bool) {
	return pos, false
}

func (formatNull) FindEndFormat(_ string, pos int) int {
	return pos
}
