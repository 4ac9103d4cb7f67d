package config

import "errors"

var (
	ErrFailedToLoadConfig     = errors.New("failed to load config")
	ErrFailedToValidateConfig = errors.New("failed to validate config")
)

// Validation specific errors
var (
	ErrInvalidPort      = errors.New("invalid port")
	ErrEmptyField       = errors.New("empty field")
	ErrUnknownProfile   = errors.New("unknown profile")
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidValue     = errors.New("invalid value")
)
