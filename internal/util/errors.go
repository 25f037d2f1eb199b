package util

// ErrPublic is an error whose message is safe to echo back to the client.
// Anything else is logged server-side and replaced by a generic message.
type ErrPublic string

func (e ErrPublic) Error() string {
	return string(e)
}

func (e ErrPublic) Is(v error) bool {
	_, ok := v.(ErrPublic)
	return ok
}
