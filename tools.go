//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: mocks for service and handler dependencies (go generate ./...)
// - github.com/pressly/goose/v3/cmd/goose: tracked by the tool directive in go.mod
