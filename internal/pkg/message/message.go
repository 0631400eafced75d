package message

const (
	InvalidData      = "Invalid data"
	UserNotFound     = "User not found"
	UnsupportedMedia = "Content-Type must be application/json"
	FmtErrStatusCode = "res.StatusCode = %d, want: %d"
)
