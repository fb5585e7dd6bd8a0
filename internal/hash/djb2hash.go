package hash

// djb2Seed - Initial hash value of the djb2 string hash
const djb2Seed uint64 = 5381

// Djb2HashAlgorithm - The internally used bucket selection algorithm. It is implemented using the djb2
// multiplicative string hash (hash = hash*33 + byte, seeded at 5381, unsigned 64-bit wraparound) and then
// applying bucket = hash % tableSize to get the bucket number. The table size is used as given, there is no
// rounding to a power of 2 or to a prime.
type Djb2HashAlgorithm struct {
	tableSize int64
}

// NewDjb2HashAlgorithm - Returns a pointer to a new Djb2HashAlgorithm instance
func NewDjb2HashAlgorithm(tableSize int64) *Djb2HashAlgorithm {
	ha := &Djb2HashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the table will address, values below 1 are treated as 1
func (D *Djb2HashAlgorithm) SetTableSize(tableSize int64) {
	if tableSize < 1 {
		tableSize = 1
	}
	D.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (D *Djb2HashAlgorithm) HashFunc1(key []byte) int64 {
	return int64(Djb2(key) % uint64(D.tableSize))
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (D *Djb2HashAlgorithm) GetTableSize() int64 {
	return D.tableSize
}

// Djb2 - Returns the raw, unreduced djb2 hash of key
func Djb2(key []byte) uint64 {
	h := djb2Seed
	for _, b := range key {
		h = h<<5 + h + uint64(b)
	}

	return h
}
