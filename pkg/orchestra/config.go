package orchestra

import (
	"io"

	"github.com/srevinsaju/menagerie/pkg/logging"
)

type Config struct {
	// Demos holds glob patterns matched against demo names. An empty list
	// selects every demo.
	Demos []string

	// Output receives the demonstration transcript. Defaults to stdout.
	Output io.Writer

	Logging logging.Config
}
