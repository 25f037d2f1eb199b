package web

import (
	"errors"
	"strconv"
)

// looseInt is an int64 request field that accepts either a JSON integer or
// an integer-valued string, the two forms the browser client sends. Valid
// string forms are an optional leading sign followed by decimal digits,
// nothing else; fractional numbers are rejected either way.
type looseInt struct {
	value int64
	set   bool
}

var errNotAnInteger = errors.New("not an integer")

func (l *looseInt) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return errNotAnInteger
	}

	l.value = value
	l.set = true

	return nil
}
