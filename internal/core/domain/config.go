package domain

// Default configuration values.
const (
	DefaultHasher     = "xxhash"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "auto"
	DefaultIterations = 1000
	DefaultWorkers    = 1
)

// Config is the validated tool configuration.
type Config struct {
	Cache CacheConfig
	Log   LogConfig
	Bench BenchConfig
}

// CacheConfig configures one parse cache.
type CacheConfig struct {
	// Capacity bounds the number of stored documents. Zero means unbounded,
	// which never evicts.
	Capacity int
	// Hasher names the key hashing strategy.
	Hasher string
	// Coalesce makes concurrent misses on the same query share one parse.
	Coalesce bool
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string
	Format string
}

// BenchConfig configures the measurement harness.
type BenchConfig struct {
	Iterations int
	Workers    int
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			Hasher: DefaultHasher,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Bench: BenchConfig{
			Iterations: DefaultIterations,
			Workers:    DefaultWorkers,
		},
	}
}
