package interval

import "errors"

var (
	ErrInvalidNotation     = errors.New("invalid interval notation")
	ErrInvalidQuality      = errors.New("invalid interval quality")
	ErrInvalidNumber       = errors.New("invalid interval number")
	ErrInvalidSign         = errors.New("invalid interval sign")
	ErrIncompatibleQuality = errors.New("quality does not fit interval number")
	ErrNoSuchInterval      = errors.New("no interval spans these steps")
)
