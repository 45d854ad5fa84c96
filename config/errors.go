package config

import "errors"

// ErrNotFound means neither the explicit path nor the named-environment lookup
// resolved to an existing configuration source.
var ErrNotFound = errors.New("environment configuration not found")

// ErrInvalid means the configuration source exists but cannot be used: it is
// malformed, or one or more required keys are missing or blank. Resolution
// never returns a partially populated Environment alongside this error.
var ErrInvalid = errors.New("environment configuration invalid")
