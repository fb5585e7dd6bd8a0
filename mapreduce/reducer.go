package mapreduce

import (
	"strconv"

	"github.com/goelbenj/hashreduce"
)

// Reduce - Counts the entries in the bucket that word hashes to and returns the count as a one entry table.
// The count is the bucket occupancy: entries of other keys colliding into the same bucket are counted too, so
// it is an approximate, collision inclusive count. The entry key is the first key found in the bucket, which
// is not necessarily word. An empty bucket gives an empty table.
func Reduce(table *hashreduce.Table, word string) *hashreduce.Table {
	return reduceBucket(table, table.Get(word))
}

// ReduceAt - Same as Reduce but with a precomputed bucket index.
// It returns BucketOutOfRange if bucketNo is outside table.
func ReduceAt(table *hashreduce.Table, bucketNo int64) (result *hashreduce.Table, err error) {
	bucket, err := table.GetAt(bucketNo)
	if err != nil {
		return
	}
	result = reduceBucket(table, bucket)

	return
}

// ReduceExact - Counts only the entries whose key equals word. The result holds (word, count), or nothing
// when word is absent.
func ReduceExact(table *hashreduce.Table, word string) *hashreduce.Table {
	result := hashreduce.NewTableLike(table)
	values, err := table.Lookup(word)
	if err != nil {
		return result
	}
	result.Insert(word, strconv.Itoa(len(values)))

	return result
}

func reduceBucket(table *hashreduce.Table, bucket hashreduce.Bucket) *hashreduce.Table {
	result := hashreduce.NewTableLike(table)
	if len(bucket) > 0 {
		result.Insert(bucket[0].Key, strconv.Itoa(len(bucket)))
	}

	return result
}
