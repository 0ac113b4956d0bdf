package journal

import (
	"fmt"

	"github.com/google/uuid"
)

// indicates that the journal database could not be opened
type CantOpenError struct {
	Path    string
	Message string
}

func (e CantOpenError) Error() string {
	return fmt.Sprintf("can't open harvest journal %s: %s", e.Path, e.Message)
}

// indicates that no outcomes were recorded for a run
type UnknownRunError struct {
	ID uuid.UUID
}

func (e UnknownRunError) Error() string {
	return fmt.Sprintf("no harvest run with id %s", e.ID.String())
}
