package storage

import "errors"

// Sentinel errors for every business-rule failure the store can raise.
// Handlers map them to HTTP statuses with errors.Is; anything else is
// treated as a database fault and surfaces as a 500.
var (
	ErrEventNotFound  = errors.New("event not found")
	ErrGroupNotFound  = errors.New("group not found")
	ErrMemberNotFound = errors.New("member not found")
	ErrGroupClosed    = errors.New("group does not accept new members")
	ErrGroupFull      = errors.New("group size limit reached")
)
