package model

import "time"

// Config is the complete leadscore configuration
type Config struct {
	Scoring ScoringConfig `yaml:"scoring" mapstructure:"scoring"`
	Export  ExportConfig  `yaml:"export" mapstructure:"export"`
	Cache   CacheConfig   `yaml:"cache" mapstructure:"cache"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
}

// ScoringConfig controls the confidence score
type ScoringConfig struct {
	Weights              Weights  `yaml:"weights" mapstructure:"weights"`
	GenericPrefixes      []string `yaml:"generic_prefixes" mapstructure:"generic_prefixes"`
	TopDomains           []string `yaml:"top_domains" mapstructure:"top_domains"`
	HighQualityThreshold int      `yaml:"high_quality_threshold" mapstructure:"high_quality_threshold"`
}

// Weights are the points awarded per factor
type Weights struct {
	EmailValid     int `yaml:"email_valid" mapstructure:"email_valid"`
	IndustryKnown  int `yaml:"industry_known" mapstructure:"industry_known"`
	SpecificPrefix int `yaml:"specific_prefix" mapstructure:"specific_prefix"`
	TopDomain      int `yaml:"top_domain" mapstructure:"top_domain"`
}

// ExportConfig controls where and how leads are exported
type ExportConfig struct {
	Dir    string `yaml:"dir" mapstructure:"dir"`
	Format string `yaml:"format" mapstructure:"format"` // csv, json, yaml
}

// CacheConfig controls the classification cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"` // 0 keeps entries for the whole session
}

// OutputConfig controls console output
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			Weights:              DefaultWeights(),
			GenericPrefixes:      []string{"info", "hello", "contact", "admin", "support"},
			TopDomains:           []string{".com", ".org", ".net", ".io"},
			HighQualityThreshold: 70,
		},
		Export: ExportConfig{
			Dir:    ".",
			Format: "csv",
		},
		Cache: CacheConfig{
			Enabled: true,
		},
	}
}

// DefaultWeights returns the 40/30/20/10 point model
func DefaultWeights() Weights {
	return Weights{
		EmailValid:     40,
		IndustryKnown:  30,
		SpecificPrefix: 20,
		TopDomain:      10,
	}
}

// Max returns the sum of all weights
func (w Weights) Max() int {
	return w.EmailValid + w.IndustryKnown + w.SpecificPrefix + w.TopDomain
}
