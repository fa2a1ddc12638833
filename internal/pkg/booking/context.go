package booking

import "context"

type contextKey string

const actorKey contextKey = "actor"

// DefaultActor stamps rows created outside an authenticated request.
const DefaultActor = "system"

func NewContextWithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromContext returns the identity performing the current request,
// falling back to DefaultActor when none was set.
func ActorFromContext(ctx context.Context) string {
	actor, ok := ctx.Value(actorKey).(string)
	if !ok || actor == "" {
		return DefaultActor
	}

	return actor
}
