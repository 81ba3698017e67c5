package interfaces

import "errors"

// Store-level sentinels shared by every repository implementation.
var (
	// ErrConditionFailed means a conditional write lost against a concurrent change.
	ErrConditionFailed = errors.New("store: condition failed")
	// ErrOrderCodeTaken means the order code was already reserved by another order.
	ErrOrderCodeTaken = errors.New("store: order code taken")
	// ErrAlreadyExists means a create hit an existing primary key.
	ErrAlreadyExists = errors.New("store: item already exists")
)
