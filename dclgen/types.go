package dclgen

// Attribute represents one column of a declared table
type Attribute struct {
	Name      string
	Type      string
	Length    *int
	Precision *int
	Scale     *int
	Nullable  bool
}

// Table represents the parsed table declaration. SchemaName is empty
// when neither the DCLGEN pragma nor the DECLARE statement qualifies
// the table name.
type Table struct {
	TableName  string
	SchemaName string
	Attributes []Attribute
}
