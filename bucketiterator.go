package hashreduce

// BucketIterator - Is used to iterate over the buckets of a table one by one, in index order.
type BucketIterator struct {
	table    *Table
	bucketNo int64
}

// Buckets - Returns a pointer to a new BucketIterator positioned before the first bucket
func (T *Table) Buckets() *BucketIterator {
	return &BucketIterator{table: T}
}

// HasNext - Returns true if there are more buckets to be fetched from a call to Next.
func (B *BucketIterator) HasNext() bool {
	return B.bucketNo < B.table.capacity
}

// Next - Returns the next bucket number together with a copy of its entries.
// Calling Next when HasNext is false returns bucketNo -1 and a nil bucket.
func (B *BucketIterator) Next() (bucketNo int64, bucket Bucket) {
	if !B.HasNext() {
		bucketNo = -1
		return
	}

	bucketNo = B.bucketNo
	bucket = B.table.bucketCopy(bucketNo)
	B.bucketNo++

	return
}
