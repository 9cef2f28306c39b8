package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDepth sets the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithPrune enables or disables alpha-beta pruning.
func (b *ConfigBuilder) WithPrune(enabled bool) *ConfigBuilder {
	b.cfg.Search.Prune = enabled
	return b
}

// WithWorkers sets the root fan-out worker count and the minimum number of
// root moves before it is used.
func (b *ConfigBuilder) WithWorkers(workers, threshold int) *ConfigBuilder {
	b.cfg.Search.Workers = workers
	b.cfg.Search.ParallelThreshold = threshold
	return b
}

// WithSeed sets the tie-break seed.
func (b *ConfigBuilder) WithSeed(seed uint64) *ConfigBuilder {
	b.cfg.Search.Seed = seed
	return b
}

// WithTieBreak sets the tie-break replacement probability.
func (b *ConfigBuilder) WithTieBreak(p float64) *ConfigBuilder {
	b.cfg.Search.TieBreakProbability = p
	return b
}

// WithStandPat enables stand-pat at the horizon.
func (b *ConfigBuilder) WithStandPat(enabled bool) *ConfigBuilder {
	b.cfg.Search.StandPat = enabled
	return b
}

// WithMateValue sets the checkmate score.
func (b *ConfigBuilder) WithMateValue(v float64) *ConfigBuilder {
	b.cfg.Eval.MateValue = v
	return b
}

// WithCheckBonus sets the check bonus.
func (b *ConfigBuilder) WithCheckBonus(v float64) *ConfigBuilder {
	b.cfg.Eval.CheckBonus = v
	return b
}

// WithPrecision sets the number of decimal places scores keep.
func (b *ConfigBuilder) WithPrecision(places int) *ConfigBuilder {
	b.cfg.Eval.Precision = places
	return b
}

// WithStartFEN sets the start position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithLogFile sets the diagnostics writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
