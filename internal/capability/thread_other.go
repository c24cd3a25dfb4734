//go:build !linux

package capability

func callingThread() int {
	return 0
}
