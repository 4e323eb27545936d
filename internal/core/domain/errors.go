package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrCourseNotFound = errors.New("course not found")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidRole = errors.New("invalid role")
var ErrMentorNotApproved = errors.New("mentor not approved")
