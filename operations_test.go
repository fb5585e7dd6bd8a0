//go:build unit

package hashreduce

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/goelbenj/hashreduce/internal/hash"
	"github.com/stretchr/testify/assert"
	"testing"
)

const testCapacity int64 = 20

func newTestTable(t *testing.T, policy InsertPolicy) *Table {
	table, err := NewTable(testCapacity, nil, policy)
	assert.NoError(t, err, "create new table")
	return table
}

func TestNewTable(t *testing.T) {
	t.Run("creates an empty table with internal hash", func(t *testing.T) {
		// Execute
		table, err := NewTable(testCapacity, nil, AppendAlways)

		// Check
		assert.NoError(t, err, "create new table")
		assert.Equal(t, testCapacity, table.Capacity(), "capacity preserved")
		assert.Equal(t, AppendAlways, table.Policy(), "policy preserved")
		assert.Equal(t, 0, table.Len(), "table is empty")
	})

	t.Run("uses custom hash algorithm", func(t *testing.T) {
		// Prepare
		alg := hash.NewDjb2HashAlgorithm(3)

		// Execute
		table, err := NewTable(7, alg, AppendAlways)

		// Check
		assert.NoError(t, err, "create new table")
		assert.Equal(t, int64(7), alg.GetTableSize(), "table size pushed to algorithm")
		assert.Equal(t, int64(7), table.Capacity(), "capacity preserved")
	})

	t.Run("fails on invalid input", func(t *testing.T) {
		_, err := NewTable(0, nil, AppendAlways)
		assert.Error(t, err, "zero capacity")

		_, err = NewTable(-5, nil, AppendAlways)
		assert.Error(t, err, "negative capacity")

		_, err = NewTable(testCapacity, nil, InsertPolicy(42))
		assert.Error(t, err, "unknown policy")
	})
}

func TestParseInsertPolicy(t *testing.T) {
	t.Run("parses known names", func(t *testing.T) {
		for name, want := range map[string]InsertPolicy{"": AppendAlways, "append": AppendAlways, "update": UpdateExisting} {
			policy, err := ParseInsertPolicy(name)
			assert.NoErrorf(t, err, "parse %q", name)
			assert.Equalf(t, want, policy, "policy for %q", name)
		}
	})

	t.Run("round trips through String", func(t *testing.T) {
		for _, policy := range []InsertPolicy{AppendAlways, UpdateExisting} {
			parsed, err := ParseInsertPolicy(policy.String())
			assert.NoError(t, err, "parse policy name")
			assert.Equal(t, policy, parsed, "same policy")
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := ParseInsertPolicy("overwrite")
		assert.Error(t, err, "unknown policy name")
	})
}

func TestTable_Insert(t *testing.T) {
	t.Run("appends duplicates in insertion order", func(t *testing.T) {
		// Prepare
		table := newTestTable(t, AppendAlways)

		// Execute
		table.Insert("apple", "1")
		table.Insert("apple", "2")
		table.Insert("apple", "3")

		// Check
		assert.Equal(t, Bucket{{"apple", "1"}, {"apple", "2"}, {"apple", "3"}}, table.Get("apple"), "all duplicates kept")
		assert.Equal(t, 3, table.Len(), "three entries")
	})

	t.Run("keeps colliding keys in one bucket in order", func(t *testing.T) {
		// Prepare
		table := newTestTable(t, AppendAlways)
		keys := []string{"apple", "aa", "au", "bh", "co"}
		assert.Equal(t, table.BucketIndex("apple"), table.BucketIndex("co"), "keys collide")

		// Execute
		for i, key := range keys {
			table.Insert(key, fmt.Sprint(i))
		}

		// Check
		bucket := table.Get("apple")
		assert.Len(t, bucket, len(keys), "bucket holds every colliding entry")
		for i, key := range keys {
			assert.Equalf(t, key, bucket[i].Key, "entry #%d in insertion order", i)
		}
	})

	t.Run("updates existing key under UpdateExisting", func(t *testing.T) {
		// Prepare
		table := newTestTable(t, UpdateExisting)
		table.Insert("apple", "1")
		table.Insert("aa", "x")

		// Execute
		table.Insert("apple", "2")

		// Check
		assert.Equal(t, Bucket{{"apple", "2"}, {"aa", "x"}}, table.Get("apple"), "value overwritten in place")
		assert.Equal(t, 2, table.Len(), "no extra entry")
	})

	t.Run("routes every entry to its hashed bucket", func(t *testing.T) {
		// Prepare
		table := newTestTable(t, AppendAlways)
		for i := 0; i < 200; i++ {
			table.Insert(fmt.Sprintf("key-%d", i), "v")
		}

		// Check
		iter := table.Buckets()
		for iter.HasNext() {
			bucketNo, bucket := iter.Next()
			for _, e := range bucket {
				assert.Equalf(t, bucketNo, table.BucketIndex(e.Key), "%s is in its hashed bucket", e.Key)
			}
		}
	})
}

func TestTable_Get(t *testing.T) {
	t.Run("returns the whole bucket including other keys", func(t *testing.T) {
		// Prepare
		table := newTestTable(t, AppendAlways)
		table.Insert("a", "1")
		table.Insert("banana", "2")
		table.Insert("apple", "3")

		// Execute
		bucket := table.Get("banana")

		// Check
		assert.Equal(t, Bucket{{"a", "1"}, {"banana", "2"}}, bucket, "colliding a is included")
	})

	t.Run("returns an empty bucket for unknown key", func(t *testing.T) {
		table := newTestTable(t, AppendAlways)
		assert.Empty(t, table.Get("apple"), "empty bucket")
	})

	t.Run("returns a copy", func(t *testing.T) {
		// Prepare
		table := newTestTable(t, AppendAlways)
		table.Insert("apple", "1")

		// Execute
		bucket := table.Get("apple")
		bucket[0].Value = "changed"

		// Check
		assert.Equal(t, "1", table.Get("apple")[0].Value, "table not modified")
	})
}

func TestTable_GetAt(t *testing.T) {
	t.Run("returns the bucket at raw index", func(t *testing.T) {
		// Prepare
		table := newTestTable(t, AppendAlways)
		table.Insert("apple", "1")

		// Execute
		bucket, err := table.GetAt(table.BucketIndex("apple"))

		// Check
		assert.NoError(t, err, "get bucket at index")
		assert.Equal(t, table.Get("apple"), bucket, "same bucket as Get")
	})

	t.Run("fails outside the table", func(t *testing.T) {
		table := newTestTable(t, AppendAlways)

		_, err := table.GetAt(testCapacity)
		assert.ErrorIs(t, err, BucketOutOfRange{}, "index equal to capacity")

		_, err = table.GetAt(-1)
		assert.ErrorIs(t, err, BucketOutOfRange{}, "negative index")
	})
}

func TestTable_Lookup(t *testing.T) {
	t.Run("returns only exact matches", func(t *testing.T) {
		// Prepare
		table := newTestTable(t, AppendAlways)
		table.Insert("a", "1")
		table.Insert("banana", "2")
		table.Insert("banana", "3")

		// Execute
		values, err := table.Lookup("banana")

		// Check
		assert.NoError(t, err, "lookup existing key")
		assert.Equal(t, []string{"2", "3"}, values, "colliding a is excluded")
	})

	t.Run("throws correct error when key is not found", func(t *testing.T) {
		// Prepare
		table := newTestTable(t, AppendAlways)
		table.Insert("a", "1")

		// Execute
		_, err := table.Lookup("banana")

		// Check
		assert.ErrorIs(t, err, NoRecordFound{}, "get correct error")
		assert.True(t, errors.Is(err, NoRecordFound{}), "matches with errors.Is")
	})
}

func TestTable_Remove(t *testing.T) {
	t.Run("removes only the first matching entry", func(t *testing.T) {
		// Prepare
		table := newTestTable(t, AppendAlways)
		table.Insert("banana", "1")
		table.Insert("a", "2")
		table.Insert("banana", "3")

		// Execute
		table.Remove("banana")

		// Check
		assert.Equal(t, Bucket{{"a", "2"}, {"banana", "3"}}, table.Get("banana"), "first banana removed")
	})

	t.Run("is a no-op for a missing key", func(t *testing.T) {
		// Prepare
		table := newTestTable(t, AppendAlways)
		table.Insert("a", "1")

		// Execute
		table.Remove("banana")

		// Check
		assert.Equal(t, 1, table.Len(), "nothing removed")
		assert.Equal(t, Bucket{{"a", "1"}}, table.Get("a"), "colliding key untouched")
	})

	t.Run("does not disturb previously returned buckets", func(t *testing.T) {
		// Prepare
		table := newTestTable(t, AppendAlways)
		table.Insert("banana", "1")
		table.Insert("a", "2")
		before := table.Get("a")

		// Execute
		table.Remove("banana")

		// Check
		assert.Equal(t, Bucket{{"banana", "1"}, {"a", "2"}}, before, "copy unchanged")
	})
}

func TestTable_Display(t *testing.T) {
	t.Run("writes buckets in index order", func(t *testing.T) {
		// Prepare
		table, err := NewTable(2, nil, AppendAlways)
		assert.NoError(t, err, "create new table")
		table.Insert("apple", "1")
		table.Insert("a", "2")
		table.Insert("banana", "3")
		var buf bytes.Buffer

		// Execute
		err = table.Display(&buf)

		// Check
		assert.NoError(t, err, "display table")
		want := "Bucket 0: \n    - (a, 2) \n    - (banana, 3) \nBucket 1: \n    - (apple, 1) \n"
		assert.Equal(t, want, buf.String(), "deterministic dump")
	})

	t.Run("writes empty buckets", func(t *testing.T) {
		table, err := NewTable(2, nil, AppendAlways)
		assert.NoError(t, err, "create new table")
		var buf bytes.Buffer

		assert.NoError(t, table.Display(&buf), "display table")
		assert.Equal(t, "Bucket 0: \nBucket 1: \n", buf.String(), "only headers")
	})
}

func TestTable_Stat(t *testing.T) {
	t.Run("counts entries per bucket", func(t *testing.T) {
		// Prepare
		table := newTestTable(t, AppendAlways)
		table.Insert("a", "1")
		table.Insert("banana", "2")
		table.Insert("apple", "3")

		// Execute
		stat := table.Stat()

		// Check
		assert.Equal(t, int64(3), stat.Entries, "total entries")
		assert.Equal(t, int64(2), stat.UsedBuckets, "two buckets in use")
		assert.Len(t, stat.BucketDistribution, int(testCapacity), "one slot per bucket")
		assert.Equal(t, int64(2), stat.BucketDistribution[10], "a and banana")
		assert.Equal(t, int64(1), stat.BucketDistribution[7], "apple")
	})
}

func TestBucketIterator(t *testing.T) {
	t.Run("visits every bucket once", func(t *testing.T) {
		// Prepare
		table := newTestTable(t, AppendAlways)
		iter := table.Buckets()

		// Execute
		var visited []int64
		for iter.HasNext() {
			bucketNo, _ := iter.Next()
			visited = append(visited, bucketNo)
		}

		// Check
		assert.Len(t, visited, int(testCapacity), "all buckets visited")
		for i, bucketNo := range visited {
			assert.Equalf(t, int64(i), bucketNo, "bucket #%d in order", i)
		}
		bucketNo, bucket := iter.Next()
		assert.Equal(t, int64(-1), bucketNo, "exhausted iterator")
		assert.Nil(t, bucket, "no bucket after end")
	})
}
