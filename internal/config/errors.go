package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrValidationFailed indicates a setting holds an unusable value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownFormat indicates the file extension is neither TOML nor YAML.
	ErrUnknownFormat = errors.New("unknown config format")

	// ErrModelNotFound indicates the requested rewrite model is not configured.
	ErrModelNotFound = errors.New("model not found")
)

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError describes an invalid setting.
type ValidationError struct {
	// Setting is the file key that failed validation.
	Setting string
	// Message describes the problem.
	Message string
	// Value is the invalid value.
	Value any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Setting, e.Value, e.Message)
}

// Unwrap lets errors.Is match ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
