package idmap

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	errs "nsboot/pkg/errors"
)

// MaxExtents is the number of lines the kernel accepts in one uid_map or
// gid_map write (Linux 4.15+).
const MaxExtents = 340

// Range maps Length consecutive ids starting at NamespaceStart inside the
// user namespace onto ids starting at HostStart in the parent namespace.
type Range struct {
	NamespaceStart uint32 `yaml:"namespaceId" json:"namespaceId"`
	HostStart      uint32 `yaml:"hostId" json:"hostId"`
	Length         uint32 `yaml:"length" json:"length"`
}

// String renders the range in the kernel's map file format.
func (r Range) String() string {
	return fmt.Sprintf("%d %d %d", r.NamespaceStart, r.HostStart, r.Length)
}

// ParseRange accepts "ns:host:length" (command line form) or
// "ns host length" (map file form).
func ParseRange(s string) (Range, error) {
	var fields []string
	if strings.Contains(s, ":") {
		fields = strings.Split(s, ":")
	} else {
		fields = strings.Fields(s)
	}
	if len(fields) != 3 {
		return Range{}, fmt.Errorf("%w: %q is not <namespace-id>:<host-id>:<length>", errs.ErrInvalidMapping, s)
	}

	var values [3]uint32
	for i, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 32)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q: %v", errs.ErrInvalidMapping, s, err)
		}
		values[i] = uint32(v)
	}

	return Range{NamespaceStart: values[0], HostStart: values[1], Length: values[2]}, nil
}

// Table is the ordered list of ranges for one id kind.
type Table []Range

// Covers reports whether id is inside one of the namespace-side ranges.
func (t Table) Covers(id uint32) bool {
	for _, r := range t {
		if uint64(id) >= uint64(r.NamespaceStart) && uint64(id) < uint64(r.NamespaceStart)+uint64(r.Length) {
			return true
		}
	}
	return false
}

// HostID translates a namespace id to the host id it is mapped to.
func (t Table) HostID(id uint32) (uint32, bool) {
	for _, r := range t {
		if uint64(id) >= uint64(r.NamespaceStart) && uint64(id) < uint64(r.NamespaceStart)+uint64(r.Length) {
			return r.HostStart + (id - r.NamespaceStart), true
		}
	}
	return 0, false
}

// Render produces the exact bytes written to a map file.
func (t Table) Render() string {
	var b strings.Builder
	for _, r := range t {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Validate checks a table against the kernel's acceptance rules and the
// identity-continuity rule that namespace id 0 is mapped.
func (t Table) Validate(kind string) error {
	if len(t) == 0 {
		return fmt.Errorf("%w: %s table is empty", errs.ErrInvalidMapping, kind)
	}
	if len(t) > MaxExtents {
		return fmt.Errorf("%w: %s table has %d entries (max %d)", errs.ErrInvalidMapping, kind, len(t), MaxExtents)
	}

	for i, r := range t {
		if r.Length == 0 {
			return fmt.Errorf("%w: %s entry %d (%s) has zero length", errs.ErrInvalidMapping, kind, i, r)
		}
		if uint64(r.NamespaceStart)+uint64(r.Length) > 1<<32 || uint64(r.HostStart)+uint64(r.Length) > 1<<32 {
			return fmt.Errorf("%w: %s entry %d (%s) exceeds the 32-bit id space", errs.ErrInvalidMapping, kind, i, r)
		}
	}

	if err := checkOverlap(t, func(r Range) uint32 { return r.NamespaceStart }); err != nil {
		return fmt.Errorf("%w: %s table namespace ids: %v", errs.ErrInvalidMapping, kind, err)
	}
	if err := checkOverlap(t, func(r Range) uint32 { return r.HostStart }); err != nil {
		return fmt.Errorf("%w: %s table host ids: %v", errs.ErrInvalidMapping, kind, err)
	}

	if !t.Covers(0) {
		return fmt.Errorf("%w: %s table does not map namespace id 0", errs.ErrInvalidMapping, kind)
	}

	return nil
}

func checkOverlap(t Table, start func(Range) uint32) error {
	sorted := make(Table, len(t))
	copy(sorted, t)
	sort.Slice(sorted, func(i, j int) bool { return start(sorted[i]) < start(sorted[j]) })

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if uint64(start(prev))+uint64(prev.Length) > uint64(start(cur)) {
			return fmt.Errorf("ranges (%s) and (%s) overlap", prev, cur)
		}
	}
	return nil
}

// Mapping is the full identity mapping of a user namespace.
type Mapping struct {
	UID Table `yaml:"uid" json:"uid"`
	GID Table `yaml:"gid" json:"gid"`
}

// IsEmpty reports whether neither table has entries.
func (m Mapping) IsEmpty() bool {
	return len(m.UID) == 0 && len(m.GID) == 0
}

// Validate checks both tables. It never touches the filesystem.
func (m Mapping) Validate() error {
	if err := m.UID.Validate("uid"); err != nil {
		return err
	}
	return m.GID.Validate("gid")
}

// SingleID maps namespace id 0 to one host id, the rootless default.
func SingleID(hostUID, hostGID uint32) Mapping {
	return Mapping{
		UID: Table{{NamespaceStart: 0, HostStart: hostUID, Length: 1}},
		GID: Table{{NamespaceStart: 0, HostStart: hostGID, Length: 1}},
	}
}
