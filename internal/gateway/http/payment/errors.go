package payment

import (
	"errors"
	"fmt"
)

var ErrEmptySession = errors.New("payment gateway returned no payment url or reference")

// StatusError ответ шлюза с кодом не 2xx.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("payment gateway responded %d: %s", e.Code, e.Body)
}
