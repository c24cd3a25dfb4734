//go:build linux

package container

import "golang.org/x/sys/unix"

var cloneFlags = map[Namespace]uintptr{
	NamespaceMount:   unix.CLONE_NEWNS,
	NamespacePID:     unix.CLONE_NEWPID,
	NamespaceUTS:     unix.CLONE_NEWUTS,
	NamespaceUser:    unix.CLONE_NEWUSER,
	NamespaceIPC:     unix.CLONE_NEWIPC,
	NamespaceNetwork: unix.CLONE_NEWNET,
	NamespaceCgroup:  unix.CLONE_NEWCGROUP,
}

// CloneFlags composes the set into one clone(2) flag word.
func (n Namespaces) CloneFlags() uintptr {
	var flags uintptr
	for ns := range n {
		flags |= cloneFlags[ns]
	}
	return flags
}
