package pgglance

// Thresholds control how undecodable byte buffers are classified and bound
// the size of their textual renderings. A Thresholds value is immutable
// after construction; the decoder never modifies it.
type Thresholds struct {
	// MaxHexDisplayBytes is the largest buffer rendered as inline 0x hex.
	MaxHexDisplayBytes int

	// MaxBinaryProcessingBytes is the size at or above which a buffer is
	// rendered as the large-binary placeholder without further inspection.
	MaxBinaryProcessingBytes int

	// BinaryPeekBytes is how many leading bytes are sampled when deciding
	// whether a buffer is binary.
	BinaryPeekBytes int

	// TextDetectionRatio is the fraction of non-NUL bytes that must be
	// printable before substring extraction is attempted.
	TextDetectionRatio float64

	// BinaryDetectionRatio is the fraction of NUL bytes in the sampled
	// prefix that marks a buffer as binary.
	BinaryDetectionRatio float64

	// ValidSubstringRatio is the fraction of printable bytes an extracted
	// substring needs to be accepted.
	ValidSubstringRatio float64
}

// DefaultThresholds are the thresholds NewDecoder uses unless overridden
// with WithThresholds.
var DefaultThresholds = Thresholds{
	MaxHexDisplayBytes:       32,
	MaxBinaryProcessingBytes: 10000,
	BinaryPeekBytes:          100,
	TextDetectionRatio:       0.4,
	BinaryDetectionRatio:     0.1,
	ValidSubstringRatio:      0.8,
}
