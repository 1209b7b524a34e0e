package pgglance

// RawCell is one column value within one row: the raw bytes the server sent
// plus an optional declared type OID. Data == nil represents SQL NULL. The
// decoder reads Data for the duration of one Decode call and never retains
// it.
type RawCell struct {
	Data       []byte
	ColumnName string
	OID        uint32
}

// Value is the decoded form of a cell. Valid is false only for SQL NULL;
// every non-NULL cell decodes to some string.
type Value struct {
	String string
	Valid  bool
}

// Placeholder strings used when no faithful textual rendering is possible.
const (
	placeholderBinary      = "(binary data)"
	placeholderLargeBinary = "(large binary data)"
	placeholderUnknown     = "(unknown data type)"
)

// Decoder converts raw wire-format cells into display strings. It holds
// only immutable configuration and is safe for concurrent use.
type Decoder struct {
	thresholds Thresholds
	logger     Logger
	logLevel   LogLevel
}

// DecoderOption configures a Decoder at construction time.
type DecoderOption func(*Decoder)

// WithThresholds overrides DefaultThresholds.
func WithThresholds(t Thresholds) DecoderOption {
	return func(d *Decoder) { d.thresholds = t }
}

// WithLogger attaches a logger that receives a debug event whenever a cell
// degrades to a heuristic or placeholder rendering. Decoding output is
// unaffected by the logger.
func WithLogger(logger Logger, level LogLevel) DecoderOption {
	return func(d *Decoder) {
		d.logger = logger
		d.logLevel = level
	}
}

func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{thresholds: DefaultThresholds}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// displayProbes is the fixed probe order for cells without a usable type
// hint. Validated text is tried first so ordinary textual results are never
// mangled by the numeric paths; integers are tried narrowest to widest;
// arrays are tried before the opaque binary paths because a binary array
// header is easily mistaken for an opaque payload. The ordering is policy:
// reordering it changes what ambiguous buffers display as.
var displayProbes = []func([]byte) (string, bool){
	decodeText,
	decodeBool,
	decodeUUID,
	decodeInt2,
	decodeInt4,
	decodeInt8,
	decodeInt,
	decodeFloat4,
	decodeFloat8,
	decodeTimestamp,
	decodeArray,
}

// Decode converts one cell into its display form. It is total: SQL NULL
// yields an invalid Value, and every other input yields a string free of
// NUL bytes and non-whitespace control characters. Decode never fails and
// never panics, whatever the input bytes contain.
func (d *Decoder) Decode(cell RawCell) Value {
	if cell.Data == nil {
		return Value{}
	}
	src := cell.Data

	if s, ok := decodeHinted(cell.OID, src); ok {
		return Value{String: s, Valid: true}
	}

	for _, decode := range displayProbes {
		if s, ok := decode(src); ok {
			return Value{String: s, Valid: true}
		}
	}

	if cell.OID == ByteaOID {
		return Value{String: d.decodeBytea(src), Valid: true}
	}

	s := d.Classify(src)
	if s == "" {
		s = placeholderUnknown
	}
	if d.shouldLog(LogLevelDebug) {
		d.log(LogLevelDebug, "no typed decoding matched", map[string]interface{}{
			"column": cell.ColumnName,
			"oid":    cell.OID,
			"len":    len(src),
			"data":   logCellData(src),
		})
	}
	return Value{String: s, Valid: true}
}

// DecodeRow decodes every cell of one row.
func (d *Decoder) DecodeRow(cells []RawCell) []Value {
	values := make([]Value, len(cells))
	for i := range cells {
		values[i] = d.Decode(cells[i])
	}
	return values
}

// decodeHinted applies the declared type OID when it names a type whose
// binary layout the generic probes cannot recognize on their own. A failed
// hinted decode falls through to the generic probe order rather than
// erroring.
func decodeHinted(oid uint32, src []byte) (string, bool) {
	switch oid {
	case InetOID, CIDROID, MacaddrOID, Macaddr8OID:
		if s, err := DecodeNetworkType(src, oid); err == nil {
			return s, true
		}
	case NumericOID:
		if s, err := DecodeNumeric(src); err == nil {
			return s, true
		}
	}
	return "", false
}
