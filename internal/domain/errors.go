// Package domain holds the sentinel errors shared by repositories, services
// and handlers.
package domain

import "errors"

var (
	// Report errors
	ErrReportNotFound  = errors.New("report not found")
	ErrReportFinalized = errors.New("report is already finalized")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
