package pgglance

import "bytes"

// The classifier is a best-effort last resort for composite types, hstore
// payloads, and extension types the typed probes know nothing about. It
// must never fail and must bound its output size regardless of input size.

// Classify renders an undecodable byte buffer as a safe display string. It
// always produces something: a text passthrough, extracted substrings, a
// bounded hex or base64 rendering, or one of the placeholder strings.
func (d *Decoder) Classify(src []byte) string {
	if len(src) >= d.thresholds.MaxBinaryProcessingBytes {
		return placeholderLargeBinary
	}

	if d.looksBinary(src) {
		if len(src) <= d.thresholds.MaxHexDisplayBytes {
			return formatHex(src)
		}
		return placeholderBinary
	}

	if s, ok := decodeText(src); ok && s != "" {
		return s
	}

	if s, ok := d.extractSubstrings(src); ok {
		return s
	}

	return d.renderOpaque(src)
}

// looksBinary samples the first BinaryPeekBytes bytes and reports whether
// the NUL fraction among them exceeds BinaryDetectionRatio.
func (d *Decoder) looksBinary(src []byte) bool {
	peek := src
	if len(peek) > d.thresholds.BinaryPeekBytes {
		peek = peek[:d.thresholds.BinaryPeekBytes]
	}
	if len(peek) == 0 {
		return false
	}
	nulls := 0
	for _, b := range peek {
		if b == 0 {
			nulls++
		}
	}
	return float64(nulls)/float64(len(peek)) > d.thresholds.BinaryDetectionRatio
}

// extractSubstrings splits src on NUL bytes and keeps the runs that are
// mostly printable, valid UTF-8, and free of disallowed control characters.
// Accepted runs are rendered in the quoted array form. It reports false
// when no run qualifies.
func (d *Decoder) extractSubstrings(src []byte) (string, bool) {
	var elems []string
	for _, run := range bytes.Split(src, []byte{0}) {
		if len(run) == 0 {
			continue
		}
		printable := 0
		for _, b := range run {
			if isPrintable(b) {
				printable++
			}
		}
		if float64(printable)/float64(len(run)) <= d.thresholds.ValidSubstringRatio {
			continue
		}
		s, ok := decodeText(run)
		if !ok || s == "" {
			continue
		}
		elems = append(elems, quoteArrayElement(s))
	}
	if len(elems) == 0 {
		return "", false
	}
	return formatArray(elems), true
}

// renderOpaque is the shared hex/base64/placeholder sizing decision for
// buffers that yielded neither text nor substrings. NUL-heavy buffers too
// large for inline hex get the placeholder; other buffers get base64, which
// is bounded here because oversized buffers were already cut off by the
// large-binary check.
func (d *Decoder) renderOpaque(src []byte) string {
	if len(src) >= d.thresholds.MaxBinaryProcessingBytes {
		return placeholderLargeBinary
	}
	if len(src) <= d.thresholds.MaxHexDisplayBytes {
		return formatHex(src)
	}
	if d.looksBinary(src) {
		return placeholderBinary
	}
	return formatBase64(src)
}

// decodeBytea renders a cell known to be an opaque binary payload. When
// enough of the non-NUL bytes are printable the buffer probably embeds
// text, so substring extraction is attempted before the sizing rules.
func (d *Decoder) decodeBytea(src []byte) string {
	if len(src) >= d.thresholds.MaxBinaryProcessingBytes {
		return placeholderLargeBinary
	}

	nulls, printable := 0, 0
	for _, b := range src {
		if b == 0 {
			nulls++
		} else if isPrintable(b) {
			printable++
		}
	}
	nonNull := len(src) - nulls
	if nonNull > 0 && float64(printable)/float64(nonNull) > d.thresholds.TextDetectionRatio {
		if s, ok := d.extractSubstrings(src); ok {
			return s
		}
	}

	return d.renderOpaque(src)
}
