package bench

import (
	"fmt"
	"math/bits"
	"os"

	"github.com/c2h5oh/datasize"
	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	"go.llib.dev/easyiter/pkg/errorkit"
	"go.llib.dev/easyiter/pkg/iterkit"
)

const ErrInvalidConfig errorkit.Error = "invalid benchmark configuration"

// Config describes a benchmark run.
type Config struct {
	// Max is the largest value a case iterates up to, inclusive.
	Max int `yaml:"max"`
	// Rounds is how many times every case is repeated.
	Rounds int `yaml:"rounds"`
	// Parallel limits how many cases run at the same time.
	Parallel int `yaml:"parallel"`
	// Cases selects the cases to run with glob patterns, such as "zip*" or "*-hand".
	Cases []string `yaml:"cases"`
	// MemoryLimit bounds the memory the concurrently running cases may allocate.
	MemoryLimit datasize.ByteSize `yaml:"memory_limit"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Max:      1_000_000,
		Rounds:   10,
		Parallel: 2,
		Cases:    CaseNames(),

		MemoryLimit: 256 * datasize.MB,
	}
}

// LoadConfig loads configuration from a YAML file at the specified path.
// Missing fields keep their default value.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem of the configuration at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Max <= 0 {
		errs = append(errs, fmt.Errorf("max must be positive, got %d", c.Max))
	}
	if c.Rounds <= 0 {
		errs = append(errs, fmt.Errorf("rounds must be positive, got %d", c.Rounds))
	}
	if c.Parallel <= 0 {
		errs = append(errs, fmt.Errorf("parallel must be positive, got %d", c.Parallel))
	}
	if len(c.Cases) == 0 {
		errs = append(errs, fmt.Errorf("at least one case is required"))
	}
	for _, pattern := range c.Cases {
		g, err := glob.Compile(pattern)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid case pattern %q: %w", pattern, err))
			continue
		}
		if _, ok := iterkit.First(iterkit.Filter(iterkit.SliceValues(caseOrder).All(), g.Match)); !ok {
			errs = append(errs, fmt.Errorf("unknown case %q", pattern))
		}
	}
	if need := c.workingSet(); c.MemoryLimit < need {
		errs = append(errs, fmt.Errorf("memory limit %s is below the working set of %s", c.MemoryLimit.HR(), need.HR()))
	}
	if err := errorkit.Merge(errs...); err != nil {
		return ErrInvalidConfig.Wrap(err)
	}
	return nil
}

// Selected returns the names of the cases matched by the patterns of c.Cases, in reporting order.
func (c *Config) Selected() ([]string, error) {
	var globs []glob.Glob
	for _, pattern := range c.Cases {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, ErrInvalidConfig.F("invalid case pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	match := func(name string) bool {
		for _, g := range globs {
			if g.Match(name) {
				return true
			}
		}
		return false
	}
	return iterkit.Collect(iterkit.Filter(iterkit.SliceValues(caseOrder).All(), match)), nil
}

// workingSet estimates the memory of Parallel cases, each holding at most two slices of Max+1 ints.
func (c *Config) workingSet() datasize.ByteSize {
	if c.Max <= 0 || c.Parallel <= 0 {
		return 0
	}
	perCase := 2 * uint64(c.Max+1) * uint64(bits.UintSize/8)
	return datasize.ByteSize(perCase * uint64(c.Parallel))
}
