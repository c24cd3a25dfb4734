//go:build !linux

package launcher

import (
	"fmt"
	"syscall"

	"nsboot/internal/container"
	errs "nsboot/pkg/errors"
)

func sysProcAttr(container.Spec) (*syscall.SysProcAttr, error) {
	return nil, fmt.Errorf("%w: namespaces require linux", errs.ErrUnsupportedConfiguration)
}

func classifyErrno(err error) error {
	return err
}
