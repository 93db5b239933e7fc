package service

// DefaultAuthMessage is shown when the backend rejects credentials
// without supplying its own message.
const DefaultAuthMessage = "Invalid username or password"

// AuthError reports rejected credentials. It carries the backend's
// message so the login surface can show it inline.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return DefaultAuthMessage
	}
	return e.Message
}
