// Package pgglance renders raw PostgreSQL wire values as display strings.
/*
pgglance converts the raw column bytes a PostgreSQL server returns into safe,
human-readable strings for presentation. It is the value decoding layer of a
query result viewer: the connection and execution layers hand it cells of raw
bytes, and it hands back strings suitable for a table cell.

The decoder has no access to authoritative type metadata in the common case,
so it probes each cell against a fixed, ordered list of typed decoders:
validated UTF-8 text first, then boolean, UUID, integers narrowest to widest,
floating point, timestamp, and binary arrays of each of those element types.
A cell that matches nothing is classified heuristically as binary or
text-like and rendered as bounded hex, base64, extracted substrings, or one
of the documented placeholder strings.

Decoding is total: every non-NULL cell produces some string, and that string
never contains NUL bytes or non-whitespace control characters. SQL NULL is
the only input that produces an invalid Value.

	decoder := pgglance.NewDecoder()
	v := decoder.Decode(pgglance.RawCell{Data: raw, ColumnName: "name", OID: oid})
	if v.Valid {
		fmt.Println(v.String)
	}

A Decoder holds only immutable configuration and is safe for concurrent use
from any number of goroutines.
*/
package pgglance
