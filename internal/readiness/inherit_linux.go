//go:build linux

package readiness

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Descriptors of the child's pipe ends, following stdin, stdout and stderr.
const (
	ChildReadFD  = 3
	ChildWriteFD = 4
)

// Inherited opens the child endpoint from the descriptors passed by the
// host. Both are marked close-on-exec so a successful exec closes the
// channel.
func Inherited() (*Endpoint, error) {
	for _, fd := range []int{ChildReadFD, ChildWriteFD} {
		if _, err := unix.FcntlInt(uintptr(fd), unix.F_GETFD, 0); err != nil {
			return nil, fmt.Errorf("readiness descriptor %d not inherited: %w", fd, err)
		}
		unix.CloseOnExec(fd)
	}

	r := os.NewFile(ChildReadFD, "readiness-in")
	w := os.NewFile(ChildWriteFD, "readiness-out")
	return NewEndpoint(r, w), nil
}
