package domain

import "errors"

var (
	// ErrInvalidCredentials covers both unknown accounts and wrong
	// passwords; callers must not distinguish the two (no user enumeration).
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserExists         = errors.New("account already exists")
	ErrUserNotFound       = errors.New("account not found")
	ErrInvalidRole        = errors.New("invalid role")

	ErrInsufficientPoints = errors.New("insufficient point balance")
	ErrUnknownReward      = errors.New("unknown reward")

	ErrInvalidBinCode    = errors.New("not a kachra seth bin code")
	ErrBinAlreadyScanned = errors.New("bin already scanned today")
	ErrBinNotFound       = errors.New("bin not found")
	ErrStopNotFound      = errors.New("route stop not found")

	ErrUnknownCity = errors.New("unknown city")
)
