package hashreduce

import (
	"fmt"
	"io"
)

// Insert - Adds key and value to the bucket selected by the hash of key.
// With AppendAlways a new entry is always appended, so duplicate keys accumulate as separate entries.
// With UpdateExisting the value of the first entry with an equal key is overwritten if such an entry exists.
func (T *Table) Insert(key, value string) {
	bucketNo := T.BucketIndex(key)

	if T.policy == UpdateExisting {
		for i, e := range T.buckets[bucketNo] {
			if e.Key == key {
				T.buckets[bucketNo][i].Value = value
				return
			}
		}
	}

	T.buckets[bucketNo] = append(T.buckets[bucketNo], Entry{Key: key, Value: value})
}

// Get - Returns every entry in the bucket that key hashes to, in insertion order.
// This is bucket access, not key lookup: entries of other keys colliding into the same bucket are included.
// Use Lookup for a key exact search. The returned bucket is a copy.
func (T *Table) Get(key string) (bucket Bucket) {
	return T.bucketCopy(T.BucketIndex(key))
}

// GetAt - Returns a copy of the bucket at a raw index, bypassing the hash algorithm.
//   - bucketNo is the index of the bucket, the number can be retrieved by call to BucketIndex
//
// It returns:
//   - bucket is a copy of the bucket entries
//   - err is of type BucketOutOfRange if bucketNo is not between 0 and Capacity - 1
func (T *Table) GetAt(bucketNo int64) (bucket Bucket, err error) {
	if bucketNo < 0 || bucketNo >= T.capacity {
		err = BucketOutOfRange{msg: fmt.Sprintf("bucket index %d is outside 0..%d", bucketNo, T.capacity-1)}
		return
	}

	bucket = T.bucketCopy(bucketNo)

	return
}

// Lookup - Returns the values of all entries whose key equals key, in insertion order.
//   - key is the exact key to search for
//
// It returns:
//   - values holds the matching values, under UpdateExisting there is at most one
//   - err is of type NoRecordFound if no entry has the key
func (T *Table) Lookup(key string) (values []string, err error) {
	for _, e := range T.buckets[T.BucketIndex(key)] {
		if e.Key == key {
			values = append(values, e.Value)
		}
	}

	if len(values) == 0 {
		err = NoRecordFound{msg: fmt.Sprintf("no record found for key %q", key)}
	}

	return
}

// Remove - Removes the first entry whose key equals key. It is a no-op if there is no such entry.
func (T *Table) Remove(key string) {
	bucketNo := T.BucketIndex(key)
	bucket := T.buckets[bucketNo]

	for i, e := range bucket {
		if e.Key == key {
			T.buckets[bucketNo] = append(bucket[:i:i], bucket[i+1:]...)
			return
		}
	}
}

// BucketIndex - Returns which bucket number that the given key results in
func (T *Table) BucketIndex(key string) int64 {
	bucketNo := T.hashAlgorithm.HashFunc1([]byte(key)) % T.capacity
	if bucketNo < 0 {
		bucketNo += T.capacity
	}

	return bucketNo
}

// Display - Writes every bucket in index order with its entries in insertion order
func (T *Table) Display(w io.Writer) (err error) {
	iter := T.Buckets()
	for iter.HasNext() {
		bucketNo, bucket := iter.Next()
		if _, err = fmt.Fprintf(w, "Bucket %d: ", bucketNo); err != nil {
			return
		}
		for _, e := range bucket {
			if _, err = fmt.Fprintf(w, "\n    - (%s, %s) ", e.Key, e.Value); err != nil {
				return
			}
		}
		if _, err = fmt.Fprintln(w); err != nil {
			return
		}
	}

	return
}

// Stat - Walks through the entire set of buckets and produce a TableStat struct with information.
func (T *Table) Stat() (tableStat TableStat) {
	tableStat.BucketDistribution = make([]int64, T.capacity)

	iter := T.Buckets()
	for iter.HasNext() {
		bucketNo, bucket := iter.Next()
		n := int64(len(bucket))
		tableStat.Entries += n
		tableStat.BucketDistribution[bucketNo] = n
		if n > 0 {
			tableStat.UsedBuckets++
		}
	}

	return
}

// bucketCopy - Returns a copy of a bucket so callers can't alias table storage
func (T *Table) bucketCopy(bucketNo int64) (bucket Bucket) {
	src := T.buckets[bucketNo]
	if len(src) == 0 {
		return
	}
	bucket = make(Bucket, len(src))
	copy(bucket, src)

	return
}
