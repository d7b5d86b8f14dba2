package orchestra

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/srevinsaju/menagerie/pkg/c"
	"github.com/srevinsaju/menagerie/pkg/global"
	"github.com/srevinsaju/menagerie/pkg/logging"
	"github.com/srevinsaju/menagerie/pkg/meta"
)

type Menagerie struct {
	Logger *logrus.Logger
	cfg    Config
}

func (m Menagerie) Output() io.Writer {
	if m.cfg.Output == nil {
		return os.Stdout
	}
	return m.cfg.Output
}

func NewContextWithMenagerie(cfg Config) (Menagerie, context.Context, error) {
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return Menagerie{}, nil, fmt.Errorf("failed to configure logging: %w", err)
	}
	global.SetLogger(logger)

	correlationId := meta.CorrelationID().String()
	logger.WithField("correlation_id", correlationId).Debugf("%s (version=%s)", meta.AppName, meta.AppVersion)

	ctx := context.Background()
	ctx = context.WithValue(ctx, c.MenagerieContextLogger, logger)
	ctx = context.WithValue(ctx, c.MenagerieContextBootTime, time.Now())
	ctx = context.WithValue(ctx, c.MenagerieContextCorrelationId, correlationId)

	return Menagerie{Logger: logger, cfg: cfg}, ctx, nil
}

func loggerFrom(ctx context.Context) *logrus.Logger {
	if logger, ok := ctx.Value(c.MenagerieContextLogger).(*logrus.Logger); ok {
		return logger
	}
	return global.Logger()
}

// demoLogger scopes the run logger to a single demo and tags it with the
// correlation id of the run.
func demoLogger(ctx context.Context, demo string) *logrus.Entry {
	entry := loggerFrom(ctx).WithField("demo", demo)
	if id, ok := ctx.Value(c.MenagerieContextCorrelationId).(string); ok {
		entry = entry.WithField("correlation_id", id)
	}
	return entry
}
