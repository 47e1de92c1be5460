// Package profile provides use cases for viewing public profiles and
// managing the follow relation between accounts.
package profile

import "errors"

// ErrProfileNotFound indicates that no account has the requested username.
var ErrProfileNotFound = errors.New("profile not found")
