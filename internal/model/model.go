package model

// Record - Represents one parsed key,value line from a record source
type Record struct {
	Key   string
	Value string
}
