package config

// Filename is the name of the configuration file looked up in the working
// directory.
const Filename = "gqlmemo.yaml"

// File represents the structure of the gqlmemo.yaml configuration file.
// Pointer fields distinguish an omitted key from an explicit zero.
type File struct {
	Cache *CacheDTO `yaml:"cache"`
	Log   *LogDTO   `yaml:"log"`
	Bench *BenchDTO `yaml:"bench"`
}

// CacheDTO is the cache section.
type CacheDTO struct {
	Capacity *int    `yaml:"capacity"`
	Hasher   *string `yaml:"hasher"`
	Coalesce *bool   `yaml:"coalesce"`
}

// LogDTO is the log section.
type LogDTO struct {
	Level  *string `yaml:"level"`
	Format *string `yaml:"format"`
}

// BenchDTO is the bench section.
type BenchDTO struct {
	Iterations *int `yaml:"iterations"`
	Workers    *int `yaml:"workers"`
}
