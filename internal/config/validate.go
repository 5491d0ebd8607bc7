package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Parser.validate(); err != nil {
		return fmt.Errorf("parser: %w", err)
	}
	if err := c.Quiz.validate(); err != nil {
		return fmt.Errorf("quiz: %w", err)
	}
	if err := c.Progress.validate(); err != nil {
		return fmt.Errorf("progress: %w", err)
	}

	switch c.Progress.Backend {
	case BackendPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres backend")
		}
	case BackendRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("redis.url is required for the redis backend")
		}
	}

	return nil
}

func (l *LogConfig) validate() error {
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(l.Level)) {
		return fmt.Errorf("level must be debug, info, warn or error (got %q)", l.Level)
	}
	if !slices.Contains([]string{"json", "text"}, strings.ToLower(l.Format)) {
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func (p *ParserConfig) validate() error {
	if p.EmptyTopics != "drop" && p.EmptyTopics != "keep" {
		return fmt.Errorf("empty_topics must be drop or keep (got %q)", p.EmptyTopics)
	}
	return nil
}

func (q *QuizConfig) validate() error {
	if q.MaxDistractors < 1 {
		return fmt.Errorf("max_distractors must be >= 1 (got %d)", q.MaxDistractors)
	}
	if q.ChatMaxDistractors < 1 {
		return fmt.Errorf("chat_max_distractors must be >= 1 (got %d)", q.ChatMaxDistractors)
	}
	return nil
}

func (p *ProgressConfig) validate() error {
	if !slices.Contains([]string{BackendFile, BackendPostgres, BackendRedis, BackendMemory}, p.Backend) {
		return fmt.Errorf("backend must be file, postgres, redis or memory (got %q)", p.Backend)
	}
	if p.Learner == "" || filepath.Base(p.Learner) != p.Learner {
		return fmt.Errorf("learner must be a plain non-empty name (got %q)", p.Learner)
	}
	if p.Backend == BackendFile && p.FilePath == "" {
		return fmt.Errorf("file_path is required for the file backend")
	}
	if p.WriteTimeout <= 0 {
		return fmt.Errorf("write_timeout must be > 0 (got %s)", p.WriteTimeout)
	}
	if p.QueueSize < 1 {
		return fmt.Errorf("queue_size must be >= 1 (got %d)", p.QueueSize)
	}
	return nil
}
