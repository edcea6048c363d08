package config

import (
	"errors"
	"fmt"
)

// Validate checks cross-field requirements that viper defaults cannot
// express, notably that the configured classifier provider has a key.
func (c *Config) Validate() error {
	switch c.Classifier.Provider {
	case "gemini":
		if c.Classifier.GeminiApiKey == "" {
			return errors.New("classifier.gemini_api_key (or GEMINI_API_KEY) is required when classifier.provider is \"gemini\"")
		}
	case "openai":
		if c.Classifier.OpenaiApiKey == "" {
			return errors.New("classifier.openai_api_key (or OPENAI_API_KEY) is required when classifier.provider is \"openai\"")
		}
	case "heuristic", "":
		// Keyword heuristic needs no credentials.
	default:
		return fmt.Errorf("unknown classifier.provider %q", c.Classifier.Provider)
	}

	if c.Analysis.Concurrency < 0 {
		return errors.New("analysis.concurrency must not be negative")
	}
	if c.Analysis.ItemTimeout < 0 {
		return errors.New("analysis.item_timeout must not be negative")
	}

	if c.Worker.Concurrency <= 0 {
		return errors.New("worker.concurrency must be a positive integer")
	}
	for name, priority := range c.Worker.Queues {
		if name == "" {
			return errors.New("worker.queues contains an empty queue name")
		}
		if priority <= 0 {
			return fmt.Errorf("worker.queues priority for queue %q must be positive", name)
		}
	}

	return nil
}
