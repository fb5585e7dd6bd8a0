package mapreduce

// Strategy - Names the execution discipline of a pipeline run
type Strategy string

const (
	// Sequential - Maps files one after another and hashes the word for every merge
	Sequential Strategy = "none"
	// IndexOptimized - Maps like Sequential but hashes the word once and reuses the bucket index
	IndexOptimized Strategy = "tech"
	// Concurrent - Maps every file on its own worker, then folds like Sequential
	Concurrent Strategy = "thread"
)

// Strategies - Returns all strategies in the order they are documented
func Strategies() []Strategy {
	return []Strategy{Sequential, IndexOptimized, Concurrent}
}

// ParseStrategy - Returns the strategy named by name. Unknown names give Sequential with ok set to false.
func ParseStrategy(name string) (strategy Strategy, ok bool) {
	for _, s := range Strategies() {
		if string(s) == name {
			return s, true
		}
	}

	return Sequential, false
}

// Description - Returns the line printed when a run starts with this strategy
func (S Strategy) Description() string {
	switch S {
	case IndexOptimized:
		return "Performing Map Reduction with coding technique optimizations"
	case Concurrent:
		return "Performing Map Reduction with a multi-threaded optimization"
	default:
		return "Performing Map Reduction with no optimization"
	}
}
