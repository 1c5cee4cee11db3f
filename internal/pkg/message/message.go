package message

const (
	InvalidInput      = "Invalid input."
	EnvErrFmt         = "environment variable is not set: %s"
	NotLoggedIn       = "You need to be logged in!"
	BadCredentials    = "Incorrect credentials"
	InternalError     = "Internal server error."
	RequestCancelled  = "Request cancelled or timeout"
	FmtErrStatusCode  = "rec.Code = %d, want: %d"
	UserExists        = "User already exists."
	ThoughtNotFound   = "Thought not found."
	UserNotFound      = "User not found."
	UnsupportedMethod = "Method not allowed."
)
