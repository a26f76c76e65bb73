//go:build tools

// Package tools pins the code generators run by `go generate` (mockgen for mocks/),
// so go.mod and go.sum track them like any other dependency.
package hr_chat

import (
	_ "go.uber.org/mock/mockgen"
)
