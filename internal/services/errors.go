package services

import "errors"

// Error variables shared by the service layer. All four are expected,
// recoverable conditions; handlers map them to HTTP statuses.
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPlaylistNotFound   = errors.New("playlist not found")
	ErrSongNotFound       = errors.New("song not found")
	ErrNotOwner           = errors.New("actor does not own the playlist")
)
