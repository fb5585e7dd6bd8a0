package mapreduce

import (
	"sort"
	"sync"

	"github.com/goelbenj/hashreduce"
)

// MappingSet - Collects the tables produced by the map stage. Append is safe for concurrent use, the lock is
// held only while the table is added.
type MappingSet struct {
	mu     sync.Mutex
	tables []mapped
}

type mapped struct {
	position int
	table    *hashreduce.Table
}

// NewMappingSet - Returns a pointer to a new empty MappingSet with room for n tables
func NewMappingSet(n int) *MappingSet {
	return &MappingSet{tables: make([]mapped, 0, n)}
}

// Append - Adds the table mapped from the source at position
func (M *MappingSet) Append(position int, table *hashreduce.Table) {
	M.mu.Lock()
	M.tables = append(M.tables, mapped{position: position, table: table})
	M.mu.Unlock()
}

// Len - Returns the number of tables collected so far
func (M *MappingSet) Len() int {
	M.mu.Lock()
	defer M.mu.Unlock()
	return len(M.tables)
}

// Tables - Returns the collected tables ordered by source position, independent of the order they were appended in
func (M *MappingSet) Tables() []*hashreduce.Table {
	M.mu.Lock()
	defer M.mu.Unlock()

	sorted := make([]mapped, len(M.tables))
	copy(sorted, M.tables)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].position < sorted[j].position })

	tables := make([]*hashreduce.Table, len(sorted))
	for i, m := range sorted {
		tables[i] = m.table
	}

	return tables
}
