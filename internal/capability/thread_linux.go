//go:build linux

package capability

import "golang.org/x/sys/unix"

// callingThread is the tid used for capget and /proc/<tid>/status. Bounding
// drops act on the calling thread; /proc/self shows the group leader.
func callingThread() int {
	return unix.Gettid()
}
