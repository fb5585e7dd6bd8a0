package hashreduce

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// Is - Matches any NoRecordFound regardless of message, so errors.Is works with the zero value
func (E NoRecordFound) Is(target error) bool {
	_, ok := target.(NoRecordFound)
	return ok
}

// BucketOutOfRange - Custom error to inform that a raw bucket index is outside the table
type BucketOutOfRange struct {
	msg string
}

// Error - Used to notify that a bucket index is out of range
func (B BucketOutOfRange) Error() string {
	if B.msg == "" {
		return "bucket index out of range"
	}
	return B.msg
}

// Is - Matches any BucketOutOfRange regardless of message
func (B BucketOutOfRange) Is(target error) bool {
	_, ok := target.(BucketOutOfRange)
	return ok
}
