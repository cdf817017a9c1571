package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. Each invocation of the CLI gets
// one as its run ID so log lines from overlapping cron runs can be
// told apart.
var NewULID = func() string {
	return ulid.Make().String()
}
