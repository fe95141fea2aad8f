//go:build linux || darwin

package cmd

import (
	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

// raiseFileLimit lifts the soft open-file limit to the hard limit. The
// daemon holds the database, the listener and one socket per in-flight
// request; distribution defaults can be as low as 1024.
func raiseFileLimit(log zerolog.Logger) {
	var limit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &limit); err != nil {
		log.Debug().Err(err).Msg("failed to read RLIMIT_NOFILE")
		return
	}
	if limit.Cur >= limit.Max {
		return
	}

	limit.Cur = limit.Max
	if err := unix.Setrlimit(unix.RLIMIT_NOFILE, &limit); err != nil {
		log.Debug().Err(err).Msg("failed to raise RLIMIT_NOFILE")
		return
	}

	log.Debug().Uint64("limit", uint64(limit.Cur)).Msg("raised open-file limit")
}
