package main

import (
	"errors"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/srevinsaju/menagerie/pkg/diag"
)

func init() {
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
	})
	log.SetOutput(os.Stderr)

	if os.Getenv("MENAGERIE_DEBUG") != "" {
		log.SetLevel(log.TraceLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	app := initCli()
	if err := app.Run(os.Args); err != nil {
		var diags diag.Diagnostics
		if errors.As(err, &diags) {
			_ = diags.Write(os.Stderr)
		} else {
			log.Error(err)
		}
		os.Exit(1)
	}
}
