package utils

// API error codes returned alongside HTTP statuses so clients can
// branch without string matching.
const (
	ErrorTokenAuthFail   = 40101
	ErrorBadRequest      = 40001
	ErrorPolicyRejection = 40002
	ErrorNotFound        = 40401
	ErrorInternal        = 50001
)
