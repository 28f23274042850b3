package server

import (
	"context"

	"github.com/WillZhangFly/one-second/internal"
)

type (
	serverKey    struct{}
	localeKey    struct{}
	requestIDKey struct{}
)

func withServer(ctx context.Context, server *Server) context.Context {
	return context.WithValue(ctx, serverKey{}, server)
}

func serverFromContext(ctx context.Context) *Server {
	return ctx.Value(serverKey{}).(*Server)
}

func withLocale(ctx context.Context, locale *internal.Locale) context.Context {
	return context.WithValue(ctx, localeKey{}, locale)
}

func localeFromContext(ctx context.Context) *internal.Locale {
	return ctx.Value(localeKey{}).(*internal.Locale)
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFromContext(ctx context.Context) string {
	id, ok := ctx.Value(requestIDKey{}).(string)
	if !ok {
		return ""
	}
	return id
}
