package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")

	// ErrSuiteLoad means a test suite could not be loaded or produced no
	// parseable report. It is a configuration error, never counted as a
	// test failure.
	ErrSuiteLoad = goerr.New("failed to load test suite")

	// ErrRecordWrite means artifacts were published but the deployment
	// record could not be written.
	ErrRecordWrite = goerr.New("failed to write deployment record")
)
