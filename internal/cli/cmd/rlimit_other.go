//go:build !(linux || darwin)

package cmd

import "github.com/rs/zerolog"

func raiseFileLimit(zerolog.Logger) {}
