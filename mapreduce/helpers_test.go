//go:build unit

package mapreduce

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/goelbenj/hashreduce"
	"github.com/stretchr/testify/assert"
)

const testCapacity int64 = 20

func newTestTable(t *testing.T) *hashreduce.Table {
	table, err := hashreduce.NewTable(testCapacity, nil, hashreduce.AppendAlways)
	assert.NoError(t, err, "create new table")
	return table
}

// writeSources - Writes one db file per content string into a temp dir and returns their paths
func writeSources(t *testing.T, contents ...string) []string {
	dir := t.TempDir()
	files := make([]string, len(contents))
	for i, c := range contents {
		files[i] = filepath.Join(dir, fmt.Sprintf("db%d.txt", i+1))
		err := os.WriteFile(files[i], []byte(c), 0644)
		assert.NoErrorf(t, err, "write source #%d", i)
	}
	return files
}

func newTestPipeline(t *testing.T, exact bool) *Pipeline {
	p, err := NewPipeline(Config{Capacity: testCapacity, Policy: hashreduce.AppendAlways, Exact: exact})
	assert.NoError(t, err, "create new pipeline")
	return p
}
