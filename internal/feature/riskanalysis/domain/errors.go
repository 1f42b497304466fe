// Package domain defines domain-level errors for the riskanalysis feature.
package domain

import "errors"

// Domain errors for risk analysis.
// The handler maps each of them to a distinct status code or detail message.
var (
	// ErrEmptyArticle indicates that the article text is empty after trimming.
	// It is returned before any external model is called.
	ErrEmptyArticle = errors.New("article text cannot be empty")

	// ErrGeneratorUnavailable indicates that the text generation model failed or returned no text.
	ErrGeneratorUnavailable = errors.New("text generation model unavailable")

	// ErrMalformedOutput indicates that the generation model replied but no JSON object could be parsed from it.
	ErrMalformedOutput = errors.New("text generation model did not return valid JSON")

	// ErrEntityExtraction indicates that the entity recognition model failed.
	ErrEntityExtraction = errors.New("entity extraction failed")

	// ErrEmptyImage indicates that an uploaded article image has no content.
	ErrEmptyImage = errors.New("image data is empty")

	// ErrImageTooLarge indicates that an uploaded article image exceeds the size limit.
	ErrImageTooLarge = errors.New("image size exceeds maximum")

	// ErrTextReader indicates that text could not be read from an article image.
	ErrTextReader = errors.New("text extraction from image failed")

	// ErrAnalysisNotFound indicates that no stored analysis exists for the given ID.
	ErrAnalysisNotFound = errors.New("analysis not found")
)
