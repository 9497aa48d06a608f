package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrExerciseNotFound    = errors.New("exercise not found")
	ErrExerciseNotStarted  = errors.New("exercise not started")
	ErrChallengeNotFound   = errors.New("challenge not found")
	ErrChallengeActive     = errors.New("challenge already active")
	ErrAnalysisUnavailable = errors.New("analysis unavailable")
	ErrEmptyText           = errors.New("text is empty")
	ErrProfileCorrupt      = errors.New("persisted profile unreadable")
)
