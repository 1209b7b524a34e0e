package pgglance

// PostgreSQL type OIDs the decoder recognizes. Definitions can be found in
// src/include/catalog/pg_type.dat in the PostgreSQL sources.
const (
	BoolOID        = 16
	ByteaOID       = 17
	Int8OID        = 20
	Int2OID        = 21
	Int4OID        = 23
	TextOID        = 25
	CIDROID        = 650
	Float4OID      = 700
	Float8OID      = 701
	Macaddr8OID    = 774
	MacaddrOID     = 829
	InetOID        = 869
	VarcharOID     = 1043
	TimestampOID   = 1114
	TimestamptzOID = 1184
	NumericOID     = 1700
	UUIDOID        = 2950
)
