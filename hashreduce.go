package hashreduce

import (
	"fmt"
	"github.com/goelbenj/hashreduce/hashfunc"
	"github.com/goelbenj/hashreduce/internal/hash"
)

// InsertPolicy - Decides what Insert does when the key already exists in its bucket.
// A table keeps the policy it was created with for its whole lifetime.
type InsertPolicy int

const (
	// AppendAlways - Every Insert appends a new entry, duplicate keys accumulate in the same bucket
	AppendAlways InsertPolicy = iota
	// UpdateExisting - Insert overwrites the value of the first entry with an equal key, or appends if there is none
	UpdateExisting
)

// String - Returns the configuration name of the policy
func (P InsertPolicy) String() string {
	switch P {
	case AppendAlways:
		return "append"
	case UpdateExisting:
		return "update"
	default:
		return fmt.Sprintf("InsertPolicy(%d)", int(P))
	}
}

// ParseInsertPolicy - Returns the policy named by name, "" selects AppendAlways
func ParseInsertPolicy(name string) (policy InsertPolicy, err error) {
	switch name {
	case "", "append":
		policy = AppendAlways
	case "update":
		policy = UpdateExisting
	default:
		err = fmt.Errorf("unknown insert policy %q, should be \"append\" or \"update\"", name)
	}

	return
}

// Entry - One key/value pair held by a bucket
type Entry struct {
	Key   string
	Value string
}

// Bucket - Entries routed to the same bucket index, in insertion order
type Bucket []Entry

// TableStat - Statistics on the overall usage and distribution over buckets
//   - Entries is the total number of entries stored
//   - UsedBuckets is the number of buckets holding at least one entry
//   - BucketDistribution is the number of entries stored in each bucket
type TableStat struct {
	Entries            int64
	UsedBuckets        int64
	BucketDistribution []int64
}

// Table - A fixed size chained hash table. It never rehashes, so the bucket an entry was inserted into stays
// correct for as long as the table lives. A Table is not safe for concurrent use.
type Table struct {
	buckets       []Bucket
	capacity      int64
	hashAlgorithm hashfunc.HashAlgorithm
	policy        InsertPolicy
}

// NewTable - Returns a new empty table.
//   - capacity is the number of buckets, it must be 1 or higher
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface, nil selects djb2.
//   - policy is the insert policy used for every Insert on this table
//
// It returns:
//   - table is a pointer to the new Table
//   - err is a normal go Error which should be nil if everything went ok
func NewTable(capacity int64, hashAlgorithm hashfunc.HashAlgorithm, policy InsertPolicy) (table *Table, err error) {
	// Check if capacity is valid
	if capacity <= 0 {
		err = fmt.Errorf("capacity must be a positive value higher than 0 (zero)")
		return
	}

	// Check if the policy is valid
	if policy != AppendAlways && policy != UpdateExisting {
		err = fmt.Errorf("unknown insert policy %d", int(policy))
		return
	}

	// If no HashAlgorithm was given then use the default internal
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewDjb2HashAlgorithm(capacity)
	} else {
		hashAlgorithm.SetTableSize(capacity)
	}

	// A custom algorithm may have adjusted the size
	capacity = hashAlgorithm.GetTableSize()
	if capacity <= 0 {
		err = fmt.Errorf("hash algorithm reports a table size of %d", capacity)
		return
	}

	table = &Table{
		buckets:       make([]Bucket, capacity),
		capacity:      capacity,
		hashAlgorithm: hashAlgorithm,
		policy:        policy,
	}

	return
}

// NewTableLike - Returns a new empty table with the same capacity, hash algorithm and policy as t
func NewTableLike(t *Table) *Table {
	return &Table{
		buckets:       make([]Bucket, t.capacity),
		capacity:      t.capacity,
		hashAlgorithm: t.hashAlgorithm,
		policy:        t.policy,
	}
}

// Capacity - Returns the number of buckets
func (T *Table) Capacity() int64 {
	return T.capacity
}

// Policy - Returns the insert policy of the table
func (T *Table) Policy() InsertPolicy {
	return T.policy
}

// Len - Returns the total number of entries across all buckets
func (T *Table) Len() (n int) {
	for _, b := range T.buckets {
		n += len(b)
	}

	return
}
