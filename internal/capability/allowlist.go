package capability

import (
	"fmt"
	"sort"
	"strings"

	gocap "github.com/syndtr/gocapability/capability"
	"gopkg.in/yaml.v3"
)

// AllowList is the sorted, de-duplicated set of capabilities a process keeps
// after the drop.
type AllowList []gocap.Cap

// ParseCap resolves a capability name as documented in capabilities(7).
// "CAP_SETUID", "cap_setuid" and "setuid" all name the same capability.
func ParseCap(name string) (gocap.Cap, error) {
	normalized := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "cap_")
	for _, c := range gocap.List() {
		if c.String() == normalized {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown capability %q", name)
}

// ParseAllowList resolves a list of capability names.
func ParseAllowList(names []string) (AllowList, error) {
	caps := make([]gocap.Cap, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		c, err := ParseCap(name)
		if err != nil {
			return nil, err
		}
		caps = append(caps, c)
	}
	return NewAllowList(caps...), nil
}

// NewAllowList builds an allow-list from capability values.
func NewAllowList(caps ...gocap.Cap) AllowList {
	seen := make(map[gocap.Cap]struct{}, len(caps))
	list := make(AllowList, 0, len(caps))
	for _, c := range caps {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}

// Contains reports whether c is retained.
func (a AllowList) Contains(c gocap.Cap) bool {
	for _, have := range a {
		if have == c {
			return true
		}
	}
	return false
}

// Names renders the list in CAP_* form.
func (a AllowList) Names() []string {
	return capNames(a)
}

func (a AllowList) String() string {
	return strings.Join(a.Names(), ",")
}

func (a *AllowList) UnmarshalYAML(value *yaml.Node) error {
	var names []string
	if err := value.Decode(&names); err != nil {
		return fmt.Errorf("capabilities must be a list of names: %w", err)
	}
	parsed, err := ParseAllowList(names)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a AllowList) MarshalYAML() (interface{}, error) {
	return a.Names(), nil
}

func capNames(caps []gocap.Cap) []string {
	names := make([]string, len(caps))
	for i, c := range caps {
		names[i] = "CAP_" + strings.ToUpper(c.String())
	}
	return names
}
