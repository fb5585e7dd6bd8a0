package mapreduce

import (
	"github.com/goelbenj/hashreduce"
)

// Merge - Copies every entry of the bucket that word hashes to in src into acc, using acc's insert policy.
// Only acc is modified.
func Merge(acc, src *hashreduce.Table, word string) {
	mergeBucket(acc, src.Get(word))
}

// MergeAt - Same as Merge but with a precomputed bucket index, so the word is not hashed again.
// It returns BucketOutOfRange if bucketNo is outside src.
func MergeAt(acc, src *hashreduce.Table, bucketNo int64) (err error) {
	bucket, err := src.GetAt(bucketNo)
	if err != nil {
		return
	}
	mergeBucket(acc, bucket)

	return
}

// mergeBucket - Inserts entries in order
func mergeBucket(acc *hashreduce.Table, bucket hashreduce.Bucket) {
	for _, e := range bucket {
		acc.Insert(e.Key, e.Value)
	}
}
