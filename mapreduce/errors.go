package mapreduce

// EmptyMappingSet - Custom error to inform that the map stage produced no table to seed the fold with
type EmptyMappingSet struct {
	msg string
}

// Error - Used to notify that there is nothing to merge
func (E EmptyMappingSet) Error() string {
	if E.msg == "" {
		return "empty mapping set, no source produced a table"
	}
	return E.msg
}

// Is - Matches any EmptyMappingSet regardless of message
func (E EmptyMappingSet) Is(target error) bool {
	_, ok := target.(EmptyMappingSet)
	return ok
}
