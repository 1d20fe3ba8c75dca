package trends

import "errors"

var (
	ErrBadFilename      = errors.New("feed filename must start with YE<two-digit-year>")
	ErrMissingStoreNo   = errors.New("feed is missing the STORE_NO column")
	ErrLocationNotFound = errors.New("restaurant location not found")
)
