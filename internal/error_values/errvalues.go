package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrValidation = errors.New("validation error")
	ErrWrongOwner = errors.New("resource belongs to another user")

	ErrEntryNotFound = errors.New("entry doesn't exist")
	ErrInvalidMood   = errors.New("invalid mood")

	ErrCollectionNotFound = errors.New("collection doesn't exist")
	ErrCollectionExists   = errors.New("collection with such name already exists")

	ErrInvalidPeriod = errors.New("invalid analytics period")
	ErrRateLimited   = errors.New("too many requests")
)
