package logging

import (
	"errors"
	"io"
	"os"

	"github.com/acarl005/stripansi"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const DefaultLogFile = "menagerie.log"

type Sink struct {
	Name  string
	Level logrus.Level

	Options map[string]string
}

type Config struct {
	Verbosity int
	IsCI      bool
	JSON      bool

	// Output receives the human readable log stream. Defaults to stderr so
	// that stdout carries only the demonstration transcript.
	Output io.Writer

	Sinks []Sink
}

func ParseSinksFromCLI(ctx *cli.Context) []Sink {
	var sinks []Sink
	path := ctx.Path("log-file")
	if path != "" {
		sinks = append(sinks, Sink{
			Name:  "file",
			Level: logrus.DebugLevel,
			Options: map[string]string{
				"path": path,
			},
		})
	}
	return sinks
}

func New(cfg Config) (*logrus.Logger, error) {
	logger := logrus.New()
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	switch cfg.Verbosity {
	case -1:
	case 0:
		logger.SetLevel(logrus.InfoLevel)
	case 1:
		logger.SetLevel(logrus.DebugLevel)
	default:
		logger.SetLevel(logrus.TraceLevel)
	}
	if cfg.IsCI {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
			ForceColors:      true,
		})
	}
	if cfg.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	for _, sink := range cfg.Sinks {
		switch sink.Name {
		case "file":
			path, ok := sink.Options["path"]
			if !ok {
				path = DefaultLogFile
			}
			hook := lfshook.NewHook(levelPaths(sink.Level, path), &plainFormatter{inner: &logrus.JSONFormatter{}})
			logger.AddHook(hook)
		default:
			return nil, errors.New("unknown sink: " + sink.Name)
		}
	}

	return logger, nil
}

// levelPaths routes every level at least as severe as min to path.
func levelPaths(min logrus.Level, path string) lfshook.PathMap {
	paths := lfshook.PathMap{}
	for _, level := range logrus.AllLevels {
		if level <= min {
			paths[level] = path
		}
	}
	return paths
}

// plainFormatter removes terminal escape sequences from messages before
// handing the entry to the wrapped formatter.
type plainFormatter struct {
	inner logrus.Formatter
}

func (f *plainFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	clean := entry.Dup()
	clean.Level = entry.Level
	clean.Caller = entry.Caller
	clean.Message = stripansi.Strip(entry.Message)
	return f.inner.Format(clean)
}
