package mapreduce

import (
	"github.com/goelbenj/hashreduce"
	"github.com/goelbenj/hashreduce/internal/model"
)

// Map - Inserts every record of a source into a new table shaped like template, in record order.
// The template itself is never modified, so Map may run concurrently for different sources.
func Map(template *hashreduce.Table, records []model.Record) *hashreduce.Table {
	table := hashreduce.NewTableLike(template)
	for _, r := range records {
		table.Insert(r.Key, r.Value)
	}

	return table
}
