package types

type contextKey string

// TokenKey carries the raw bearer token through the request context. The
// token is resolved against the session store by the services, not here.
const TokenKey contextKey = "bearer_token"
