package records

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/goelbenj/hashreduce/internal/model"
	"io"
	"os"
	"strings"
)

// separator - Separates key from value in a record line
const separator = ","

// MalformedRecord - Custom error to inform that ingestion stopped at a line without a key,value structure
type MalformedRecord struct {
	Line int
}

// Error - Used to notify which line stopped ingestion
func (M MalformedRecord) Error() string {
	return fmt.Sprintf("malformed record on line %d", M.Line)
}

// Is - Matches any MalformedRecord regardless of line
func (M MalformedRecord) Is(target error) bool {
	_, ok := target.(MalformedRecord)
	return ok
}

// Read - Parses key,value lines from r until end of input or the first line without a separator.
// The key is the text before the first separator and the value is the rest of the line, so values may contain
// commas. Trailing "\r" is removed and the last line does not need a line break.
//
// It returns:
//   - records holds every record parsed before ingestion stopped, in input order
//   - err is nil at a clean end of input, MalformedRecord when a bad line stopped ingestion, or a read error
func Read(r io.Reader) (records []model.Record, err error) {
	var line string
	var readErr error
	fr := bufio.NewReader(r)

	for lineNo := 1; ; lineNo++ {
		line, readErr = fr.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			err = readErr
			return
		}
		if line == "" && readErr != nil {
			return
		}

		line = strings.TrimRight(line, "\n\r")
		key, value, found := strings.Cut(line, separator)
		if !found {
			err = MalformedRecord{Line: lineNo}
			return
		}
		records = append(records, model.Record{Key: key, Value: value})

		if readErr != nil {
			return
		}
	}
}

// ReadFile - Opens the named file and parses it with Read. A file that can't be opened yields no records and
// the open error, callers treat both as an empty source.
func ReadFile(name string) (records []model.Record, err error) {
	f, err := os.OpenFile(name, os.O_RDONLY, 0644)
	if err != nil {
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	return Read(f)
}
