package conf

// TableSize - Default number of buckets in every table of a run
const TableSize int64 = 20

// NumFiles - Number of sources in the default input set
const NumFiles = 4

// DefaultDataDir - Directory the input files are resolved against
const DefaultDataDir = "."

// DefaultLogLevel - Level of the structured logger
const DefaultLogLevel = "warn"

// DefaultFiles - Returns the fixed input set, relative to the data directory
func DefaultFiles() []string {
	return []string{
		"db1.txt",
		"db2.txt",
		"db3.txt",
		"db4.txt",
	}
}
