// Package fixtab reads typed records from comma-delimited text and renders
// them as fixed-width tables through one serialization protocol.
//
// # Protocol
//
// A record commits to the protocol with two pieces that are not tied to any
// base type:
//
//   - a [DecodeFunc] that builds the record from a [Decoder], one field per call
//   - an Encode method ([Encodable]) that writes the same fields, in the same
//     order, into an [Encoder]
//
// [EncodeAny] picks the encoding path from a value's dynamic type. Records
// delegate to their Encode method; strings, decimals and unsigned integers go
// to the matching primitive; a [Tuple] is encoded element by element:
//
//	row := fixtab.Tup(t.Surname, t.Name, amount)
//	err := fixtab.EncodeAny(enc, row)
//
// # Line Codec
//
// [LineDecoder] consumes one line left to right. The last field is the rest of
// the line. The decoder tracks its cursor so a failure can be reported with
// the byte offset and the unconsumed fragment:
//
//	d := fixtab.NewLineDecoder("Ritz,Suite,199.50")
//	name, _ := d.DecodeString()    // "Ritz"
//	room, _ := d.DecodeString()    // "Suite"
//	price, _ := d.DecodeDecimal()  // 199.50
//
// [LineEncoder] writes the inverse form. [DecodeLines] and [DecodeFile] run a
// [DecodeFunc] over every line of an input, skipping lines that fail and
// returning a [Diagnostic] for each.
//
// # Fixed Tables
//
// [FixedTable] declares its columns up front. Each inserted value is encoded
// into one row, one column per primitive; text is truncated or right-padded to
// the column width:
//
//	t := fixtab.NewFixedTable(fixtab.Column{Label: "Name", Width: 5})
//	t.InsertMany("Alpha", "Bob")
//	for line := range t.Lines() {
//		fmt.Println(line)
//	}
//
// prints
//
//	-------
//	|Name |
//	-------
//	|Alpha|
//	|Bob  |
//	-------
//
// # Formats
//
// [Write] renders a sequence of records as [Table], [CSV], [JSON], [JSONL],
// [YAML] or [Plain].
// Use [ParseFormat] to convert a flag value into a [Format].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrEndOfInput] — a decoder ran out of fields
//   - [ErrDataInvalid] — a field is malformed or fails record validation
//   - [ErrNullValue] — a nil value was passed to [EncodeAny]
//   - [ErrUnsupportedType] — [EncodeAny] cannot encode the value's type
//   - [ErrRowOverflow] — a row has more cells than the table has columns
//   - [ErrUnsupportedFormat] — unknown format string
package fixtab
