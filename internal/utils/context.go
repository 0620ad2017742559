package utils

import "context"

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserEmailKey contextKey = "email"
	UserRoleKey  contextKey = "role"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// Caller is the authenticated identity resolved from the bearer credential.
// It is threaded explicitly through service calls instead of being pulled
// from ambient state inside the business logic.
type Caller struct {
	ID    uint
	Email string
	Role  string
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// SetUserContext sets user info into context (called by middleware)
func SetUserContext(ctx context.Context, id uint, email string, role string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, id)
	ctx = context.WithValue(ctx, UserEmailKey, email)
	ctx = context.WithValue(ctx, UserRoleKey, role)
	return ctx
}

// CallerFromContext retrieves the authenticated caller, if any.
func CallerFromContext(ctx context.Context) (Caller, bool) {
	id, ok := ctx.Value(UserIDKey).(uint)
	if !ok || id == 0 {
		return Caller{}, false
	}
	email, _ := ctx.Value(UserEmailKey).(string)
	role, _ := ctx.Value(UserRoleKey).(string)
	return Caller{ID: id, Email: email, Role: role}, true
}

// GetUserIDFromContext retrieves userID safely
func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(UserIDKey).(uint)
	return id, ok
}

func GetUserRoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(UserRoleKey).(string)
	return role
}
