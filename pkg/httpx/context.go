package httpx

import "context"

type ctxKey string

const (
	CtxKeySubject  ctxKey = "subject"
	CtxKeyUsername ctxKey = "username"
)

// WithSubject records the authenticated principal on ctx.
func WithSubject(ctx context.Context, subject, username string) context.Context {
	ctx = context.WithValue(ctx, CtxKeySubject, subject)
	ctx = context.WithValue(ctx, CtxKeyUsername, username)
	return ctx
}

// SubjectFromContext returns the authenticated principal, if any.
func SubjectFromContext(ctx context.Context) (subject, username string, ok bool) {
	subject, ok = ctx.Value(CtxKeySubject).(string)
	if !ok || subject == "" {
		return "", "", false
	}
	username, _ = ctx.Value(CtxKeyUsername).(string)
	return subject, username, true
}
