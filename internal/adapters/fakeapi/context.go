package fakeapi

import "context"

type userKey struct{}

func WithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, userKey{}, email)
}

func UserEmailFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(userKey{}).(string)
	return v, ok && v != ""
}
