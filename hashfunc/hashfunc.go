package hashfunc

// HashAlgorithm - Interface that permits an implementation using the hashreduce Table to supply a custom bucket
// selection algorithm. Tables that are merged with each other must use algorithms that route equal keys to
// equal buckets, otherwise the bucket index merge path is meaningless.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when creating a new Table. If a custom hash algorithm is supplied that already has a table size,
	// it will be overwritten by the capacity given to the Table.
	//   - tableSize is the number of buckets the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) is reduced modulo the table size by the Table.
	HashFunc1(key []byte) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting
	GetTableSize() int64
}
