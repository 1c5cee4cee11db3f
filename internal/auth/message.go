package auth

const (
	MsgLoggedIn      = "Logged in."
	MsgSignupSuccess = "Signed up."
)
