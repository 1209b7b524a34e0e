package pgglance

// decodeBool accepts the single-byte binary encoding and the textual forms
// the server uses for boolean. In the full probe order the textual forms are
// normally claimed by decodeText first; they are handled here so the
// function is usable standalone and as an array element decoder.
func decodeBool(src []byte) (string, bool) {
	if len(src) == 1 {
		switch src[0] {
		case 0, 'f':
			return "false", true
		case 1, 't':
			return "true", true
		}
		return "", false
	}

	switch string(src) {
	case "true":
		return "true", true
	case "false":
		return "false", true
	}
	return "", false
}
