package models

// Field is one named column value of a listing row.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Record is a listing row in column order.
type Record []Field

// Valuer exposes column values by name.
type Valuer interface {
	Value(column string) string
}

// Project builds a record with the given columns, in order.
func Project(v Valuer, columns []string) Record {
	record := make(Record, 0, len(columns))
	for _, column := range columns {
		record = append(record, Field{Name: column, Value: v.Value(column)})
	}
	return record
}
