package models

import (
	"errors"
)

var (
	// ErrScrapeFailed marks an ingestion payload whose success flag was
	// false or absent. Fatal for that candidate only.
	ErrScrapeFailed = errors.New("scraper failed")

	// ErrEmptyBatch marks a normalization pass that produced no valid
	// content items.
	ErrEmptyBatch = errors.New("no content items found in scraper data")

	// ErrNoClassifier marks a classification attempt with no external
	// provider configured.
	ErrNoClassifier = errors.New("no external classifier configured")

	ErrValidation = errors.New("validation error")
)
