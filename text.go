package pgglance

import "unicode/utf8"

// decodeText accepts src as display text if it is valid UTF-8 containing no
// disallowed control characters. Binary-format values are frequently valid
// UTF-8 by coincidence; the control-character check is what makes them fall
// through to the later probes instead of reaching the UI as garbage.
func decodeText(src []byte) (string, bool) {
	if !utf8.Valid(src) {
		return "", false
	}
	for _, b := range src {
		if isDisallowedControl(b) {
			return "", false
		}
	}
	return string(src), true
}

// isDisallowedControl reports whether b is a control character that must
// never appear in decoder output. Tab, LF, and CR are permitted whitespace.
func isDisallowedControl(b byte) bool {
	if b >= 0x20 {
		return b == 0x7f
	}
	return b != '\t' && b != '\n' && b != '\r'
}

// isPrintable reports whether b is printable for classification purposes:
// ASCII 0x20-0x7E, tab, LF, or CR.
func isPrintable(b byte) bool {
	return (b >= 0x20 && b <= 0x7e) || b == '\t' || b == '\n' || b == '\r'
}
