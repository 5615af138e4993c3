package platform

import (
	"errors"
)

var (
	// ErrPageUnavailable is an error returned when a product page doesn't become available within the bounded wait.
	// The item is skipped for the current cycle.
	ErrPageUnavailable = errors.New("product page not available")
	// ErrSessionLost is an error returned when the browser session became unusable and must be recreated.
	ErrSessionLost = errors.New("browser session lost")
)
