package meta

import "github.com/google/uuid"

const (
	AppName        = "menagerie"
	AppVersion     = "v1.0.0"
	AppDescription = "Contract dispatch, encapsulation and composition, demonstrated with vehicles, animals and superheroes"

	EnvPrefix = "MENAGERIE"
)

var correlationID uuid.UUID

// CorrelationID identifies the current process in log output. It is
// generated lazily and stays stable for the lifetime of the process.
func CorrelationID() uuid.UUID {
	if correlationID == uuid.Nil {
		correlationID = uuid.New()
	}
	return correlationID
}
