//go:build tools

// Package attendance_lab pins mockgen so `go generate ./...` regenerates
// mocks/ with the same version the tests were written against.
package attendance_lab

import (
	_ "go.uber.org/mock/mockgen"
)
