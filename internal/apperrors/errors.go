package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientFunds indicates that the wallet's withdrawable balance cannot
// cover the requested amount.
var ErrInsufficientFunds = errors.New("insufficient withdrawable funds")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrSchemaVersion indicates that a persisted state record was written with an
// incompatible schema version. Records are rejected rather than migrated.
var ErrSchemaVersion = errors.New("unsupported state record schema version")
