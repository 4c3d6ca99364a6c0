package logging

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup points the standard logger at stdout and, when path is set, at a
// rotating file as well. The returned writer is what echo should log to.
func Setup(path string) io.Writer {
	var w io.Writer = os.Stdout
	if path != "" {
		w = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   path,
			MaxSize:    100, // MB
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		})
	}
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.LUTC | log.Lmicroseconds)
	return w
}
