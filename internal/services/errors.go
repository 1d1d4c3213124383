// Package services defines the business logic for accounts, questions,
// answers, engagement, and moderation. This file centralizes common
// service-level error values so that they can be consistently returned by
// service methods and checked by callers.
//
// These errors are intended for internal use by the service layer; the
// handler layer translates them into user-facing messages and HTTP status
// codes.
package services

import "errors"

var (
	// ErrUnauthenticated is returned when an operation that requires a signed-in
	// user is attempted without one.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned when the caller's role does not permit the
	// operation (e.g. a non-admin calling a moderation operation).
	ErrForbidden = errors.New("operation not permitted")

	// ErrInvalidCredentials is returned on login with an unknown email or a
	// wrong password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned on signup when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrQuestionNotFound indicates that the requested question does not exist.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrAnswerNotFound indicates that the requested answer does not exist.
	ErrAnswerNotFound = errors.New("answer not found")

	// ErrEmptyTitle is returned when a question is created with a blank title.
	ErrEmptyTitle = errors.New("title is empty")

	// ErrEmptyDescription is returned when a question is created with a blank
	// description.
	ErrEmptyDescription = errors.New("description is empty")

	// ErrEmptyContent is returned when an answer or message is posted with
	// empty or whitespace-only content.
	ErrEmptyContent = errors.New("content is empty")

	// ErrInvalidRole is returned when a role value outside {user, admin} is
	// assigned.
	ErrInvalidRole = errors.New("role must be user or admin")

	// ErrInvalidStatus is returned for an unknown question status value or an
	// illegal status transition.
	ErrInvalidStatus = errors.New("invalid status transition")
)
