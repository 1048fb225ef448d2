package model

import "errors"

// Sentinel errors raised by builders, factories and enumeration lookups.
// These signal bad input shape and are raised before any storage access.
var (
	ErrUnknownEnumValue     = errors.New("unknown enumeration value")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidDescription   = errors.New("invalid description input")
)
