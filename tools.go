//go:build tools

package tools

// This file tracks CLI tools used during development. It is not compiled
// into any binary.
//
//   - github.com/matryer/moq                  mocks for consumer interfaces (go generate ./...)
//   - github.com/pressly/goose/v3/cmd/goose   ad-hoc migration work; binaries use the embedded FS
