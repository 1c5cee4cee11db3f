package web

const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	MimeJSON            = "application/json"
	MimeForm            = "application/x-www-form-urlencoded"
)
