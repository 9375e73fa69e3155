package xbrl

import (
	"errors"
	"fmt"
)

// ErrMalformed marks structural parse failures. Callers test with
// errors.Is(err, ErrMalformed).
var ErrMalformed = errors.New("malformed XBRL document")

func newParseError(file string, err error) error {
	return errors.Join(&ParseError{file: file, err: err}, ErrMalformed)
}

// ParseError names the source file a structural failure came from.
type ParseError struct {
	file string
	err  error
}

func (self *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", self.file, self.err)
}

func (self *ParseError) Unwrap() error { return self.err }

func (self *ParseError) Is(target error) bool {
	_, ok := target.(*ParseError)
	return ok
}

func (self *ParseError) File() string { return self.file }
