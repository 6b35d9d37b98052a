package rewrite

import "go.trai.ch/zerr"

var (
	// ErrCacheNotFound is returned when the cache file does not exist in the working directory.
	ErrCacheNotFound = zerr.New("cache file not found")

	// ErrCacheReadFailed is returned when the cache file exists but cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache file")

	// ErrCacheWriteFailed is returned when the rewritten content cannot be written back.
	ErrCacheWriteFailed = zerr.New("failed to write cache file")

	// ErrEmptySearchPath is returned when no search path is configured.
	ErrEmptySearchPath = zerr.New("search path must not be empty")

	// ErrWorkdirUnavailable is returned when the working directory cannot be resolved.
	ErrWorkdirUnavailable = zerr.New("failed to resolve working directory")
)
