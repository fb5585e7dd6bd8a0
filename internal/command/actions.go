package command

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/goelbenj/hashreduce"
	"github.com/goelbenj/hashreduce/internal/conf"
	"github.com/goelbenj/hashreduce/internal/history"
	"github.com/goelbenj/hashreduce/mapreduce"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// RunAction maps, merges and reduces the configured sources for the word given as first argument
func RunAction(c *cli.Context) error {
	out := c.App.Writer

	if n := c.Int("list-history"); n > 0 {
		config, err := loadConfig(c)
		if err != nil {
			return err
		}
		return listHistory(out, config.HistoryDB, n)
	}

	if c.NArg() < 1 {
		fmt.Fprintln(out, "No word specified, performing no map-reduce")
		return nil
	}
	word := c.Args().Get(0)
	fmt.Fprintf(out, "Performing Map Reduction for %s\n", word)

	strategy := mapreduce.Sequential
	if c.NArg() > 1 {
		var ok bool
		strategy, ok = mapreduce.ParseStrategy(c.Args().Get(1))
		if ok {
			fmt.Fprintln(out, strategy.Description())
		} else {
			fmt.Fprintln(out, "Invalid optimization level! Please specify \"none\", \"tech\", or \"thread\"")
		}
	} else {
		fmt.Fprintln(out, "No optimization level specified, performing map reduction with no optimization.")
	}

	config, err := loadConfig(c)
	if err != nil {
		return err
	}

	logLevel, err := conf.ParseLogLevel(config.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: logLevel}))

	policy, err := hashreduce.ParseInsertPolicy(config.InsertPolicy)
	if err != nil {
		return err
	}

	exact := c.Bool("exact")
	pipeline, err := mapreduce.NewPipeline(mapreduce.Config{
		Capacity: config.TableSize,
		Policy:   policy,
		Exact:    exact,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	files := config.Paths()
	start := time.Now()
	result, err := pipeline.Run(strategy, files, word)
	if err != nil {
		return errors.Wrap(err, "map reduce failed")
	}
	if err := result.Display(out); err != nil {
		return errors.Wrap(err, "failed to display result")
	}
	elapsed := time.Since(start)

	if !exact {
		fmt.Fprintln(out, "Count is approximate: it includes every key colliding into the bucket of the word")
	}
	fmt.Fprintf(out, "Total duration: %9.6g seconds\n", elapsed.Seconds())

	if config.HistoryDB == "" {
		return nil
	}

	run := history.Run{
		Word:      word,
		Strategy:  string(strategy),
		Exact:     exact,
		FileCount: len(files),
		TableSize: config.TableSize,
		Duration:  elapsed,
	}
	run.ResultKey, run.ResultCount = resultEntry(result)

	return recordRun(logger, config.HistoryDB, run)
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(c *cli.Context) (*conf.Config, error) {
	config, err := conf.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("data-dir") {
		config.DataDir = c.String("data-dir")
	}
	if c.IsSet("table-size") {
		config.TableSize = c.Int64("table-size")
	}
	if c.IsSet("policy") {
		config.InsertPolicy = c.String("policy")
	}
	if c.IsSet("log-level") {
		config.LogLevel = c.String("log-level")
	}
	if c.IsSet("history-db") {
		config.HistoryDB = c.String("history-db")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// resultEntry returns the single entry of a result table, or zero values for an empty one
func resultEntry(result *hashreduce.Table) (key string, count int64) {
	iter := result.Buckets()
	for iter.HasNext() {
		_, bucket := iter.Next()
		if len(bucket) == 0 {
			continue
		}
		key = bucket[0].Key
		count, _ = strconv.ParseInt(bucket[0].Value, 10, 64)
		return
	}

	return
}

func recordRun(logger *slog.Logger, path string, run history.Run) error {
	db, err := history.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	id, err := db.Record(run)
	if err != nil {
		return err
	}
	logger.Debug("Recorded run", "id", id, "db", path)

	return nil
}

func listHistory(out io.Writer, path string, n int) error {
	if path == "" {
		return errors.New("no history database configured, use --history-db or history_db")
	}

	db, err := history.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	runs, err := db.Recent(n)
	if err != nil {
		return err
	}

	yamlBytes, err := yaml.Marshal(runs)
	if err != nil {
		return errors.Wrap(err, "failed to marshal runs")
	}

	fmt.Fprint(out, string(yamlBytes))
	return nil
}
