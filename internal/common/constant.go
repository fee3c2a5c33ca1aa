package common

// EnvValidUsers is the environment variable the hosting platform uses to
// hand the JSON user list to the process.
const EnvValidUsers = "VALID_USERS"

// EnvEndpointAddr optionally overrides the HTTP bind address.
const EnvEndpointAddr = "ADDRESS"

// RequestTypeToken is the only accepted value of the "type" field in the
// inbound request envelope.
const RequestTypeToken = "TOKEN"

// RequestIDHeaderName carries the per-request correlation id on inbound
// and outbound HTTP messages.
const RequestIDHeaderName = "X-Request-Id"
