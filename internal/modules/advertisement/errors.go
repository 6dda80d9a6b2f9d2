package advertisement

import "errors"

var (
	ErrNotFound          = errors.New("advertisement not found")
	ErrForbidden         = errors.New("operation not permitted")
	ErrOpenLimitExceeded = errors.New("no more than 10 open advertisements per user")
	ErrOwnFavorite       = errors.New("cannot favorite own advertisement")
)
