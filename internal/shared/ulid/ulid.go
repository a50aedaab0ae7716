package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewRunID generates a new ULID string identifying one run of the tool.
var NewRunID = func() string {
	return ulid.Make().String()
}
