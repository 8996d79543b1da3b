// Description: This file contains the context package which is used to set and retrieve data from the context.
package common

import (
	"context"

	"github.com/google/uuid"
)

// ctxUserIdKeyType represents the key type for the authenticated user ID in the context.
type ctxUserIdKeyType string

const ctxUserIdKey ctxUserIdKeyType = "ContentSrvUserId"

// SetUserIdInContext sets the authenticated user ID in the provided context.
func SetUserIdInContext(ctx context.Context, userId uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxUserIdKey, userId)
}

// UserIdFromContext retrieves the authenticated user ID from the provided context.
// Returns uuid.Nil when the request is unauthenticated.
func UserIdFromContext(ctx context.Context) uuid.UUID {
	if userId, ok := ctx.Value(ctxUserIdKey).(uuid.UUID); ok {
		return userId
	}
	return uuid.Nil
}
