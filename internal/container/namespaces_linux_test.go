//go:build linux

package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"

	"nsboot/internal/container"
)

func TestNamespaces_CloneFlags(t *testing.T) {
	set := container.NewNamespaces(container.NamespaceUser, container.NamespacePID, container.NamespaceMount)

	assert.Equal(t, uintptr(unix.CLONE_NEWUSER|unix.CLONE_NEWPID|unix.CLONE_NEWNS), set.CloneFlags())
	assert.Equal(t, uintptr(0), container.Namespaces{}.CloneFlags())
}
