package mapreduce

import (
	"log/slog"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/goelbenj/hashreduce"
	"github.com/goelbenj/hashreduce/hashfunc"
	"github.com/goelbenj/hashreduce/internal/records"
	"github.com/panjf2000/ants/v2"
)

// Config - Settings shared by every table of a pipeline.
//   - Capacity is the number of buckets of every table
//   - HashAlgorithm is optional, nil selects the internal djb2 algorithm
//   - Policy is the insert policy of every table
//   - Exact selects the exact match reducer instead of the bucket occupancy one
//   - Logger is optional, nil discards log output
type Config struct {
	Capacity      int64
	HashAlgorithm hashfunc.HashAlgorithm
	Policy        hashreduce.InsertPolicy
	Exact         bool
	Logger        *slog.Logger
}

// Pipeline - Runs Map, Merge and Reduce over a set of files under one of the strategies
type Pipeline struct {
	template *hashreduce.Table
	exact    bool
	logger   *slog.Logger
}

// NewPipeline - Returns a pointer to a new Pipeline, or an error if the table settings are invalid
func NewPipeline(config Config) (*Pipeline, error) {
	template, err := hashreduce.NewTable(config.Capacity, config.HashAlgorithm, config.Policy)
	if err != nil {
		return nil, errors.Wrap(err, "invalid table settings")
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Pipeline{template: template, exact: config.Exact, logger: logger}, nil
}

// Run - Maps every file, folds the tables into the first one and reduces the result for word.
// Files that can't be read, or that stop at a malformed line, contribute the records read so far.
// It returns an error wrapping EmptyMappingSet when files is empty.
func (P *Pipeline) Run(strategy Strategy, files []string, word string) (*hashreduce.Table, error) {
	P.logger.Debug("Starting map stage", "strategy", strategy, "files", len(files), "word", word)

	var set *MappingSet
	var err error
	if strategy == Concurrent {
		set, err = P.mapConcurrent(files)
		if err != nil {
			return nil, err
		}
	} else {
		set = P.mapSequential(files)
	}

	tables := set.Tables()
	if len(tables) == 0 {
		return nil, errors.Wrapf(EmptyMappingSet{}, "strategy %s over %d files", strategy, len(files))
	}
	P.logger.Debug("Map stage complete", "strategy", strategy, "tables", len(tables))

	acc, rest := tables[0], tables[1:]

	var result *hashreduce.Table
	if strategy == IndexOptimized {
		result, err = P.foldAt(acc, rest, word)
		if err != nil {
			return nil, err
		}
	} else {
		result = P.fold(acc, rest, word)
	}

	if !P.exact {
		P.logger.Info("Count is approximate, it includes every key colliding into the bucket of the word", "word", word, "bucket", acc.BucketIndex(word))
	}

	return result, nil
}

// fold - Merges by key, hashing word for every table
func (P *Pipeline) fold(acc *hashreduce.Table, rest []*hashreduce.Table, word string) *hashreduce.Table {
	for _, src := range rest {
		Merge(acc, src, word)
	}
	P.logger.Debug("Merge stage complete", "entries", acc.Len())

	if P.exact {
		return ReduceExact(acc, word)
	}
	return Reduce(acc, word)
}

// foldAt - Hashes word once and merges and reduces by bucket index
func (P *Pipeline) foldAt(acc *hashreduce.Table, rest []*hashreduce.Table, word string) (*hashreduce.Table, error) {
	bucketNo := acc.BucketIndex(word)
	for _, src := range rest {
		if err := MergeAt(acc, src, bucketNo); err != nil {
			return nil, errors.Wrapf(err, "merge at bucket %d", bucketNo)
		}
	}
	P.logger.Debug("Merge stage complete", "entries", acc.Len(), "bucket", bucketNo)

	if P.exact {
		return ReduceExact(acc, word), nil
	}
	result, err := ReduceAt(acc, bucketNo)
	if err != nil {
		return nil, errors.Wrapf(err, "reduce at bucket %d", bucketNo)
	}

	return result, nil
}

// mapSequential - Maps the files in order on the calling goroutine
func (P *Pipeline) mapSequential(files []string) *MappingSet {
	set := NewMappingSet(len(files))
	for i, name := range files {
		set.Append(i, P.mapFile(name))
	}

	return set
}

// mapConcurrent - Maps every file on its own pooled worker. A worker builds its table without touching shared
// state and only takes the mapping set lock to append the finished table. Returns after all workers are done.
func (P *Pipeline) mapConcurrent(files []string) (*MappingSet, error) {
	set := NewMappingSet(len(files))
	if len(files) == 0 {
		return set, nil
	}

	pool, err := ants.NewPool(len(files))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create map worker pool")
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, name := range files {
		wg.Add(1)
		err = pool.Submit(func() {
			defer wg.Done()
			table := P.mapFile(name)
			set.Append(i, table)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, errors.Wrapf(err, "failed to submit map task for %s", name)
		}
	}
	wg.Wait()

	return set, nil
}

// mapFile - Reads one source and maps it, read problems only shorten the source
func (P *Pipeline) mapFile(name string) *hashreduce.Table {
	recs, err := records.ReadFile(name)
	if err != nil {
		P.logger.Debug("Source stopped early", "file", name, "records", len(recs), "error", err)
	}

	table := Map(P.template, recs)
	P.logger.Debug("Mapped source", "file", name, "entries", table.Len())

	return table
}
