package configs

import _ "embed"

// Defaults compiled into the binary, used when the files on disk are not found
// (tests, or a binary started outside the repository root).
var (
	//go:embed application.yml
	DefaultApplication []byte

	//go:embed messages.yml
	DefaultMessages []byte
)
