package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := c.LLM.Validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if err := c.OCR.validate(); err != nil {
		return fmt.Errorf("ocr: %w", err)
	}

	if c.Library.MaxSetsPerDevice <= 0 {
		return fmt.Errorf("library.max_sets_per_device must be > 0 (got %d)", c.Library.MaxSetsPerDevice)
	}
	if c.Library.MaxWordsPerSet <= 0 {
		return fmt.Errorf("library.max_words_per_set must be > 0 (got %d)", c.Library.MaxWordsPerSet)
	}
	if c.Library.MaxImportBytes <= 0 {
		return fmt.Errorf("library.max_import_bytes must be > 0 (got %d)", c.Library.MaxImportBytes)
	}

	if c.RateLimit.OCRPerMinute <= 0 {
		return fmt.Errorf("rate_limit.ocr_per_minute must be > 0 (got %d)", c.RateLimit.OCRPerMinute)
	}

	if c.Storage.Enabled() && (c.Storage.AccessKey == "" || c.Storage.SecretKey == "") {
		return fmt.Errorf("storage: access_key and secret_key are required when endpoint is set")
	}

	return nil
}

// Validate checks the database section on its own.
func (d DatabaseConfig) Validate() error {
	if d.DSN == "" {
		return fmt.Errorf("dsn is required")
	}
	if d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns (%d) must not exceed max_conns (%d)", d.MinConns, d.MaxConns)
	}
	return nil
}

// Validate checks the extraction model section on its own.
func (l LLMConfig) Validate() error {
	if l.APIKey == "" {
		return fmt.Errorf("api_key is required (ANTHROPIC_API_KEY)")
	}
	if l.Model == "" {
		return fmt.Errorf("model is required")
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", l.MaxRetries)
	}
	return nil
}

func (o *OCRConfig) validate() error {
	if o.MaxImageBytes <= 0 {
		return fmt.Errorf("max_image_bytes must be > 0 (got %d)", o.MaxImageBytes)
	}
	if o.BatchConcurrency < 1 {
		return fmt.Errorf("batch_concurrency must be >= 1 (got %d)", o.BatchConcurrency)
	}
	if o.MaxBatchImages < 1 {
		return fmt.Errorf("max_batch_images must be >= 1 (got %d)", o.MaxBatchImages)
	}
	if strings.Count(o.SetLabelFormat, "%") != 1 || !strings.Contains(o.SetLabelFormat, "%s") {
		return fmt.Errorf("set_label_format must contain exactly one %%s verb (got %q)", o.SetLabelFormat)
	}

	o.AllowedMediaTypes = ParseList(o.AllowedMediaTypesRaw)
	if len(o.AllowedMediaTypes) == 0 {
		return fmt.Errorf("allowed_media_types must not be empty")
	}

	return nil
}

// ParseList parses a comma-separated string into trimmed, lower-cased,
// non-empty items. An empty string returns a nil slice.
func ParseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		items = append(items, p)
	}

	return items
}
