package core

// ColumnDescriptor describes one result column. Numeric columns are
// right-aligned by the renderer.
type ColumnDescriptor struct {
	Name    string `json:"name"`
	Numeric bool   `json:"numeric"`
}

// ResultSet is a fully materialized query result.
type ResultSet struct {
	Columns []ColumnDescriptor `json:"columns"`
	Rows    [][]Value          `json:"rows"`
}

// Names returns the column names in order.
func (rs ResultSet) Names() []string {
	names := make([]string, len(rs.Columns))
	for i, c := range rs.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the values of column i across all rows.
func (rs ResultSet) Column(i int) []Value {
	values := make([]Value, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		if i < len(row) {
			values = append(values, row[i])
		}
	}
	return values
}

// Identity identifies the author of archived reports (git commit author).
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
