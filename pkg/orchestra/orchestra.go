package orchestra

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

// Run executes the selected demos in registration order, writing their
// transcripts to the configured output.
func Run(cfg Config) error {
	m, ctx, err := NewContextWithMenagerie(cfg)
	if err != nil {
		return err
	}

	demos, diags := Registered().Select(cfg.Demos)
	if diags.HasErrors() {
		return diags
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(ch)
	go InterruptHandler(ctx, cancel, ch)

	if err := RunDemos(ctx, demos, m.Output()); err != nil {
		Finale(ctx, logrus.ErrorLevel)
		return err
	}
	Finale(ctx, logrus.InfoLevel)
	return nil
}

func RunDemos(ctx context.Context, demos Demos, w io.Writer) error {
	logger := loggerFrom(ctx)
	for _, demo := range demos {
		logger.Debugf("running demo %s", demo.Name())
		if err := demo.Run(ctx, w); err != nil {
			return fmt.Errorf("demo %s: %w", demo.Name(), err)
		}
	}
	return nil
}
