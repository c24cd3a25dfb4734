//go:build !linux

package isolation

import (
	"fmt"

	errs "nsboot/pkg/errors"
	"nsboot/pkg/logger"
)

func setup(Mounter, Options, *logger.Logger) error {
	return fmt.Errorf("%w: mount isolation requires linux", errs.ErrUnsupportedConfiguration)
}
