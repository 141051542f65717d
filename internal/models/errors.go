package models

import "errors"

// Sentinel errors shared between repositories, services and handlers.
// Handlers map them to HTTP statuses with errors.Is.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrCartEmpty       = errors.New("cart is empty")
	ErrMalformedItems  = errors.New("malformed order items")
)
