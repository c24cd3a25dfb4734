package container

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	errs "nsboot/pkg/errors"
)

// Namespace is one kind of kernel isolation domain.
type Namespace string

const (
	NamespaceMount   Namespace = "mount"
	NamespacePID     Namespace = "pid"
	NamespaceUTS     Namespace = "uts"
	NamespaceUser    Namespace = "user"
	NamespaceIPC     Namespace = "ipc"
	NamespaceNetwork Namespace = "network"
	NamespaceCgroup  Namespace = "cgroup"
)

// AllNamespaces lists every supported kind in a stable order.
var AllNamespaces = []Namespace{
	NamespaceUser,
	NamespaceMount,
	NamespacePID,
	NamespaceUTS,
	NamespaceIPC,
	NamespaceNetwork,
	NamespaceCgroup,
}

var namespaceAliases = map[string]Namespace{
	"mnt": NamespaceMount,
	"net": NamespaceNetwork,
}

// ParseNamespace accepts the canonical names plus "mnt" and "net".
func ParseNamespace(name string) (Namespace, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := namespaceAliases[n]; ok {
		return alias, nil
	}
	for _, ns := range AllNamespaces {
		if string(ns) == n {
			return ns, nil
		}
	}
	return "", fmt.Errorf("%w: unknown namespace %q", errs.ErrUnsupportedConfiguration, name)
}

// ProcFile is the /proc/self/ns entry for the namespace kind.
func (ns Namespace) ProcFile() string {
	switch ns {
	case NamespaceMount:
		return "mnt"
	case NamespaceNetwork:
		return "net"
	}
	return string(ns)
}

// Namespaces is a set of namespace kinds.
type Namespaces map[Namespace]struct{}

// NewNamespaces builds a set from kinds.
func NewNamespaces(kinds ...Namespace) Namespaces {
	set := make(Namespaces, len(kinds))
	for _, k := range kinds {
		set[k] = struct{}{}
	}
	return set
}

// ParseNamespaces parses a list of names. A single element may also be a
// comma separated list.
func ParseNamespaces(names []string) (Namespaces, error) {
	set := make(Namespaces)
	for _, entry := range names {
		for _, name := range strings.Split(entry, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			ns, err := ParseNamespace(name)
			if err != nil {
				return nil, err
			}
			set[ns] = struct{}{}
		}
	}
	return set, nil
}

// Has reports whether kind is requested.
func (n Namespaces) Has(kind Namespace) bool {
	_, ok := n[kind]
	return ok
}

// Names returns the requested kinds in AllNamespaces order.
func (n Namespaces) Names() []string {
	names := make([]string, 0, len(n))
	for _, ns := range AllNamespaces {
		if n.Has(ns) {
			names = append(names, string(ns))
		}
	}
	return names
}

func (n Namespaces) String() string {
	return strings.Join(n.Names(), ",")
}

func (n *Namespaces) UnmarshalYAML(value *yaml.Node) error {
	var names []string
	if err := value.Decode(&names); err != nil {
		return fmt.Errorf("namespaces must be a list of names: %w", err)
	}
	parsed, err := ParseNamespaces(names)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

func (n Namespaces) MarshalYAML() (interface{}, error) {
	return n.Names(), nil
}
