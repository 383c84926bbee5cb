// Package core provides core types used throughout gadwall.
//
// The package defines the values, column metadata and result sets that flow
// from the database engine to the table renderer.
//
// # Values
//
// Every cell of a result is a Value. A Value knows its kind and its natural
// text form:
//
//	v := core.ValueOf(int64(42))
//	v.Kind()            // core.NumericKind
//	v.String()          // "42"
//	core.Null.Display("(NULL)") // "(NULL)"
//
// Supported kinds:
//   - NullKind: SQL NULL
//   - NumericKind: integers, floats, big integers and decimals
//   - TextKind: strings and byte slices
//   - BooleanKind: true/false
//   - TimestampKind: date/time values
//   - OtherKind: lists, structs, maps and anything else, shown in debug form
//
// # Result Sets
//
//	rs := core.ResultSet{
//	    Columns: []core.ColumnDescriptor{
//	        {Name: "id", Numeric: true},
//	        {Name: "name"},
//	    },
//	    Rows: [][]core.Value{
//	        {core.ValueOf(1), core.ValueOf("a")},
//	    },
//	}
package core
