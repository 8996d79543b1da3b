package types

// AccountStatus is the lifecycle state of a user account.
type AccountStatus int

const (
	AccountStatusNew    AccountStatus = 0 // created, not yet verified
	AccountStatusActive AccountStatus = 1
)

// ContentStatus is the lifecycle state of a content entity. Soft delete is
// expressed by status/active flags, never by row removal.
type ContentStatus int

const (
	ContentStatusInactive ContentStatus = 0
	ContentStatusActive   ContentStatus = 1
)

type Nullable interface {
	IsNil() bool
}
