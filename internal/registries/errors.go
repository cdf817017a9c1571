package registries

import (
	"fmt"

	"loghours/internal/shared/svcerrors"
)

const (
	codeRegistryUnreadable = "REG_9000"
)

// errRegistryUnreadable returns the fatal error raised when the domain
// registry cannot be read.
func errRegistryUnreadable(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewFatalIOError(codeRegistryUnreadable,
		fmt.Sprintf("cannot read domain registry %q", path),
		fmt.Errorf("registryUnreadable: %w", cause))
}
