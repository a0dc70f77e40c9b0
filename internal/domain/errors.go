package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCart indicates an order was submitted without any lines.
	ErrEmptyCart = errors.New("empty cart")

	// ErrInvalidQuantity indicates a cart line with a quantity below 1.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrUnknownProductOrSize indicates no catalog price exists for a
	// submitted (product, size) pair. The client's catalog view is stale.
	ErrUnknownProductOrSize = errors.New("unknown product or size")

	// ErrUnknownDeliveryZone indicates the selected delivery zone does not
	// exist or is no longer active.
	ErrUnknownDeliveryZone = errors.New("unknown delivery zone")

	// ErrInvalidTransition indicates a status change not allowed by the
	// order lifecycle.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrMissingCancellationReason indicates a cancellation without a
	// usable reason.
	ErrMissingCancellationReason = errors.New("missing cancellation reason")

	// ErrConflict indicates the order's stored status no longer matches
	// the status the transition was computed from.
	ErrConflict = errors.New("order status conflict")

	// ErrStoreClosed indicates checkout was attempted outside the
	// pizzeria's operating hours.
	ErrStoreClosed = errors.New("store closed")
)
