package log

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/taskml/taskdata/pkg/errors"
)

// RouteWarningsToZerolog installs a zerolog-backed sink for library warnings.
// Warning types implementing zerolog.LogObjectMarshaler are emitted as
// structured objects; anything else falls back to the error field.
func RouteWarningsToZerolog(w io.Writer) zerolog.Logger {
	logger := zerolog.New(w).With().Timestamp().Logger()
	errors.SetZerologWarnFunc(func(warning error) {
		event := logger.Warn()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			event.Object("warning", obj).Msg(warning.Error())
			return
		}
		event.AnErr("warning", warning).Msg(warning.Error())
	})
	return logger
}
