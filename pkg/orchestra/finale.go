package orchestra

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/srevinsaju/menagerie/pkg/c"
	"github.com/srevinsaju/menagerie/pkg/ui"
)

func Finale(ctx context.Context, logLevel logrus.Level) {
	logger := logrus.NewEntry(loggerFrom(ctx))
	bootTime, ok := ctx.Value(c.MenagerieContextBootTime).(time.Time)
	if !ok {
		return
	}
	if id, ok := ctx.Value(c.MenagerieContextCorrelationId).(string); ok {
		logger = logger.WithField("correlation_id", id)
	}
	took := fmt.Sprintf("took %s", time.Since(bootTime).Round(time.Millisecond))
	if logLevel <= logrus.ErrorLevel {
		took = ui.Red(took)
	} else {
		took = ui.Green(took)
	}
	logger.Log(logLevel, took)
}
