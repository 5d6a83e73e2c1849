package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrNotRegistered
	ErrListingLimit
	ErrCartEmpty
	ErrInvalidPin
	ErrAdminLocked
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:        "success",
	ErrInternal:       "error internal",
	ErrNotFound:       "data not found",
	ErrInvalidRequest: "invalid request",
	ErrUnauthorize:    "unauthorize request",
	ErrNotRegistered:  "registration required",
	ErrListingLimit:   "listing limit reached",
	ErrCartEmpty:      "cart is empty",
	ErrInvalidPin:     "pin code invalid",
	ErrAdminLocked:    "admin login locked",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:        http.StatusOK,
	ErrInternal:       http.StatusInternalServerError,
	ErrNotFound:       http.StatusBadRequest,
	ErrInvalidRequest: http.StatusBadRequest,
	ErrUnauthorize:    http.StatusUnauthorized,
	ErrNotRegistered:  http.StatusForbidden,
	ErrListingLimit:   http.StatusForbidden,
	ErrCartEmpty:      http.StatusBadRequest,
	ErrInvalidPin:     http.StatusUnauthorized,
	ErrAdminLocked:    http.StatusLocked,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:        "0000",
	ErrInternal:       "0001",
	ErrNotFound:       "0002",
	ErrInvalidRequest: "0003",
	ErrUnauthorize:    "0004",
	ErrNotRegistered:  "0005",
	ErrListingLimit:   "0006",
	ErrCartEmpty:      "0007",
	ErrInvalidPin:     "0008",
	ErrAdminLocked:    "0009",
}
