package service

import "errors"

var (
	// ErrTokenIsExpiredOrInvalid is returned by the JWT verifier for every
	// validation failure: expired token, wrong issuer, bad signature, or a
	// string that is not a JWT at all.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
