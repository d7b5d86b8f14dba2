package global

import "github.com/sirupsen/logrus"

var logger = logrus.New()

// SetLogger replaces the process-wide logger. The orchestrator calls it
// once the command line has been parsed.
func SetLogger(l *logrus.Logger) {
	logger = l
}

func Logger() *logrus.Logger {
	return logger
}
