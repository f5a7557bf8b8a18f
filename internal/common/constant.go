package common

const (
	// AuthorizationHeaderName carries the bearer token on protected requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix is optional on the receiving side.
	BearerPrefix = "Bearer "
)
