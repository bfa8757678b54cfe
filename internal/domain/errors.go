package domain

import "errors"

var (
	// Credential errors
	ErrMissingToken = errors.New("Reader API token not set - run 'yt2reader token set' or export YT2READER_TOKEN")

	// Working list errors
	ErrPlaylistNotFound = errors.New("no saved playlist - run 'yt2reader extract' first")
	ErrNoVideosFound    = errors.New("no videos found on this page")

	// Submission errors
	ErrInvalidLocation = errors.New("invalid location (use new, later, archive or feed)")
)
