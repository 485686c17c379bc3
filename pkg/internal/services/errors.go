package services

import "errors"

var (
	ErrUnauthorized         = errors.New("authentication credentials were not provided or are invalid")
	ErrForbidden            = errors.New("you do not have permission to perform this action")
	ErrInvalidCredentials   = errors.New("unable to log in with provided credentials")
	ErrAccountExists        = errors.New("account with this username or email already exists")
	ErrAccountNotFound      = errors.New("account not found")
	ErrPostNotFound         = errors.New("post not found")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrEmptyContent         = errors.New("content cannot be empty")
	ErrSelfFollow           = errors.New("you cannot follow yourself")
)
