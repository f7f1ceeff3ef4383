package herald

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

var logger *zerolog.Logger

// SetupLogger installs the package logger. Configuration violations (for
// example a credentialed wildcard CORS call) are logged through it in
// addition to being returned as errors.
func SetupLogger(l *zerolog.Logger) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	logger = l
}
