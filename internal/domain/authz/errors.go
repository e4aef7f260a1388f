package authz

import "errors"

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrUnknownRole      = errors.New("unknown role")
	ErrUnknownResource  = errors.New("unknown resource type")
)
