package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// DefaultURLs is probed when no targets are configured anywhere.
var DefaultURLs = []string{
	"https://httpbin.org/status/200",
	"https://google.com",
	"https://github.com",
}

type Config struct {
	URLs        []string      // targets, probed in this order every cycle
	Interval    time.Duration // pause between the end of a cycle and the next
	Timeout     time.Duration // per-probe deadline
	Output      string        // JSON results file, overwritten each cycle; empty disables
	Once        bool          // run a single cycle and exit
	Listen      string        // status API bind address; empty disables
	LogDir      string        // logs directory
	Concurrency int           // max in-flight probes per cycle; 0 = unbounded
}

func Default() Config {
	return Config{
		Interval: 30 * time.Second,
		Timeout:  10 * time.Second,
		LogDir:   "logs",
	}
}

type fileConfig struct {
	URLs            []string `yaml:"urls"`
	IntervalSeconds int      `yaml:"interval_seconds"`
	TimeoutSeconds  int      `yaml:"timeout_seconds"`
	Output          string   `yaml:"output"`
	Listen          string   `yaml:"listen"`
	LogDir          string   `yaml:"log_dir"`
	Concurrency     int      `yaml:"concurrency"`
}

// ApplyFile merges settings from a YAML file. Keys absent from the file
// keep their current value.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if len(fc.URLs) > 0 {
		c.URLs = fc.URLs
	}
	if fc.IntervalSeconds != 0 {
		c.Interval = time.Duration(fc.IntervalSeconds) * time.Second
	}
	if fc.TimeoutSeconds != 0 {
		c.Timeout = time.Duration(fc.TimeoutSeconds) * time.Second
	}
	if fc.Output != "" {
		c.Output = fc.Output
	}
	if fc.Listen != "" {
		c.Listen = fc.Listen
	}
	if fc.LogDir != "" {
		c.LogDir = fc.LogDir
	}
	if fc.Concurrency != 0 {
		c.Concurrency = fc.Concurrency
	}
	return nil
}

// ApplyEnv merges HEALTHWATCH_* environment overrides on top of the current
// values. Malformed numeric values are ignored, like the defaults-first env
// parsing everywhere else in this codebase.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("HEALTHWATCH_URLS"); v != "" {
		c.URLs = SplitURLList(v)
	}
	if n, ok := envInt("HEALTHWATCH_INTERVAL"); ok {
		c.Interval = time.Duration(n) * time.Second
	}
	if n, ok := envInt("HEALTHWATCH_TIMEOUT"); ok {
		c.Timeout = time.Duration(n) * time.Second
	}
	if v := os.Getenv("HEALTHWATCH_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("HEALTHWATCH_LISTEN"); v != "" {
		c.Listen = v
	}
	if v := os.Getenv("LOG_DIR"); v != "" {
		c.LogDir = v
	}
	if n, ok := envInt("HEALTHWATCH_CONCURRENCY"); ok {
		c.Concurrency = n
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SplitURLList parses the comma-separated --urls form, dropping empty
// entries and surrounding whitespace.
func SplitURLList(s string) []string {
	parts := strings.Split(s, ",")
	urls := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			urls = append(urls, p)
		}
	}
	return urls
}

// Validate reports every configuration problem at once rather than failing
// on the first.
func (c *Config) Validate() error {
	var errs error
	for _, raw := range c.URLs {
		u, err := url.ParseRequestURI(raw)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("invalid url %q: %w", raw, err))
			continue
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			errs = multierr.Append(errs, fmt.Errorf("invalid url %q: scheme must be http or https", raw))
		}
	}
	if c.Interval <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("interval must be positive, got %s", c.Interval))
	}
	if c.Timeout <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	if c.Concurrency < 0 {
		errs = multierr.Append(errs, fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency))
	}
	return errs
}
