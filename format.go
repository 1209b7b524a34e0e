package pgglance

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// formatArray joins already-rendered elements as "[e1, e2, ...]". Quoting
// decisions belong to the caller; string-typed elements arrive pre-quoted.
func formatArray(elems []string) string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(strings.Join(elems, ", "))
	b.WriteByte(']')
	return b.String()
}

func quoteArrayElement(s string) string {
	return `"` + s + `"`
}

// formatHex renders src as lowercase hex with a 0x prefix.
func formatHex(src []byte) string {
	return "0x" + hex.EncodeToString(src)
}

func formatBase64(src []byte) string {
	return base64.StdEncoding.EncodeToString(src)
}
