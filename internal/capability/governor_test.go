package capability_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gocap "github.com/syndtr/gocapability/capability"

	"nsboot/internal/capability"
	errs "nsboot/pkg/errors"
)

var setTypes = []gocap.CapType{gocap.EFFECTIVE, gocap.PERMITTED, gocap.INHERITABLE, gocap.BOUNDING, gocap.AMBIENT}

// memCaps models the kernel as one set of committed bits and the
// library's staged copy as another.
type memCaps struct {
	kernel map[gocap.CapType]map[gocap.Cap]bool
	staged map[gocap.CapType]map[gocap.Cap]bool

	ops          []string
	applied      []gocap.CapType
	loadErr      error
	applyErr     error
	keepBounding bool
}

func newMemCaps() *memCaps {
	m := &memCaps{
		kernel: map[gocap.CapType]map[gocap.Cap]bool{},
		staged: map[gocap.CapType]map[gocap.Cap]bool{},
	}
	for _, which := range setTypes {
		m.kernel[which] = map[gocap.Cap]bool{}
		m.staged[which] = map[gocap.Cap]bool{}
	}
	return m
}

func (m *memCaps) hold(which gocap.CapType, caps ...gocap.Cap) *memCaps {
	for _, c := range caps {
		m.kernel[which][c] = true
	}
	return m
}

func (m *memCaps) Get(which gocap.CapType, what gocap.Cap) bool { return m.staged[which][what] }
func (m *memCaps) Empty(which gocap.CapType) bool               { return len(m.held(which)) == 0 }
func (m *memCaps) Full(which gocap.CapType) bool                { return false }

func (m *memCaps) Set(which gocap.CapType, caps ...gocap.Cap) {
	m.ops = append(m.ops, "set "+which.String())
	for _, t := range setTypes {
		if which&t != 0 {
			for _, c := range caps {
				m.staged[t][c] = true
			}
		}
	}
}

func (m *memCaps) Unset(which gocap.CapType, caps ...gocap.Cap) {
	m.ops = append(m.ops, "unset "+which.String())
	for _, t := range setTypes {
		if which&t != 0 {
			for _, c := range caps {
				delete(m.staged[t], c)
			}
		}
	}
}

func (m *memCaps) Fill(kind gocap.CapType)              {}
func (m *memCaps) Clear(kind gocap.CapType)             {}
func (m *memCaps) StringCap(which gocap.CapType) string { return fmt.Sprint(m.held(which)) }
func (m *memCaps) String() string                       { return "memCaps" }

func (m *memCaps) Load() error {
	if m.loadErr != nil {
		return m.loadErr
	}
	for _, t := range setTypes {
		m.staged[t] = map[gocap.Cap]bool{}
		for c := range m.kernel[t] {
			m.staged[t][c] = true
		}
	}
	return nil
}

func (m *memCaps) Apply(kind gocap.CapType) error {
	m.applied = append(m.applied, kind)
	if m.applyErr != nil {
		return m.applyErr
	}
	for _, t := range setTypes {
		if t == gocap.BOUNDING && m.keepBounding {
			continue
		}
		if kind&t != 0 {
			m.kernel[t] = map[gocap.Cap]bool{}
			for c := range m.staged[t] {
				m.kernel[t][c] = true
			}
		}
	}
	return nil
}

func (m *memCaps) held(which gocap.CapType) []gocap.Cap {
	var caps []gocap.Cap
	for c := range m.kernel[which] {
		caps = append(caps, c)
	}
	return capability.NewAllowList(caps...)
}

func rootInNamespace() *memCaps {
	full := []gocap.Cap{gocap.CAP_SETUID, gocap.CAP_SETGID, gocap.CAP_SYS_ADMIN, gocap.CAP_SETPCAP, gocap.CAP_NET_ADMIN}
	return newMemCaps().
		hold(gocap.EFFECTIVE, full...).
		hold(gocap.PERMITTED, full...).
		hold(gocap.INHERITABLE, gocap.CAP_NET_ADMIN).
		hold(gocap.BOUNDING, full...).
		hold(gocap.AMBIENT, gocap.CAP_NET_ADMIN)
}

func TestGovernor_DropTo_LeavesExactlyTheAllowList(t *testing.T) {
	state := rootInNamespace()
	g := capability.NewGovernorWithState(state, 0)
	allow := capability.NewAllowList(gocap.CAP_SETUID, gocap.CAP_SETGID)

	require.NoError(t, g.DropTo(allow))

	want := []gocap.Cap{gocap.CAP_SETUID, gocap.CAP_SETGID}
	assert.ElementsMatch(t, want, state.held(gocap.EFFECTIVE))
	assert.ElementsMatch(t, want, state.held(gocap.PERMITTED))
	assert.ElementsMatch(t, want, state.held(gocap.BOUNDING))
	assert.Empty(t, state.held(gocap.INHERITABLE))
	assert.Empty(t, state.held(gocap.AMBIENT))
}

func TestGovernor_DropTo_StagesThenCommitsOnce(t *testing.T) {
	state := rootInNamespace()
	g := capability.NewGovernorWithState(state, 0)

	require.NoError(t, g.DropTo(capability.NewAllowList(gocap.CAP_SETUID)))

	require.Len(t, state.applied, 1)
	assert.Equal(t, gocap.CAPS|gocap.BOUNDS|gocap.AMBS, state.applied[0])
	assert.Equal(t, []string{
		"unset effective",
		"unset permitted",
		"unset inheritable",
		"set permitted",
		"set effective",
		"unset bounding",
		"set bounding",
		"unset ambient",
	}, state.ops)
}

func TestGovernor_DropTo_EmptyAllowList(t *testing.T) {
	state := rootInNamespace()
	g := capability.NewGovernorWithState(state, 0)

	require.NoError(t, g.DropTo(nil))

	for _, which := range setTypes {
		assert.Empty(t, state.held(which), which.String())
	}
}

func TestGovernor_DropTo_RejectsCapabilitiesNotHeld(t *testing.T) {
	state := newMemCaps().
		hold(gocap.EFFECTIVE, gocap.CAP_SETGID).
		hold(gocap.PERMITTED, gocap.CAP_SETGID)
	g := capability.NewGovernorWithState(state, 0)

	err := g.DropTo(capability.NewAllowList(gocap.CAP_SETUID, gocap.CAP_SETGID))

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrInsufficientPrivilege))
	var capErr *capability.CapError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, "check", capErr.Op)
	assert.Contains(t, err.Error(), "CAP_SETUID")
	assert.Empty(t, state.applied)
	assert.Empty(t, state.ops)
}

func TestGovernor_DropTo_KernelFailures(t *testing.T) {
	t.Run("load", func(t *testing.T) {
		state := rootInNamespace()
		state.loadErr = errors.New("capget: EFAULT")
		err := capability.NewGovernorWithState(state, 0).DropTo(nil)

		assert.ErrorIs(t, err, errs.ErrInsufficientPrivilege)
		assert.Empty(t, state.applied)
	})

	t.Run("apply", func(t *testing.T) {
		state := rootInNamespace()
		state.applyErr = errors.New("capset: EPERM")
		err := capability.NewGovernorWithState(state, 0).DropTo(capability.NewAllowList(gocap.CAP_SETUID))

		assert.ErrorIs(t, err, errs.ErrInsufficientPrivilege)
		var capErr *capability.CapError
		require.True(t, errors.As(err, &capErr))
		assert.Equal(t, "apply", capErr.Op)
	})
}

func TestGovernor_DropTo_WithoutSetpcap(t *testing.T) {
	// SETPCAP missing from effective: the bounding set cannot be narrowed.
	noSetpcap := func(bounding ...gocap.Cap) *memCaps {
		return newMemCaps().
			hold(gocap.EFFECTIVE, gocap.CAP_SETUID).
			hold(gocap.PERMITTED, gocap.CAP_SETUID).
			hold(gocap.BOUNDING, bounding...)
	}
	allow := capability.NewAllowList(gocap.CAP_SETUID)

	t.Run("exec as root would regain the bounding set", func(t *testing.T) {
		state := noSetpcap(gocap.CAP_SETUID, gocap.CAP_SYS_ADMIN, gocap.CAP_NET_ADMIN)

		err := capability.NewGovernorWithState(state, 0).DropTo(allow)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInsufficientPrivilege)
		var capErr *capability.CapError
		require.True(t, errors.As(err, &capErr))
		assert.Equal(t, "bound", capErr.Op)
		assert.Contains(t, err.Error(), "CAP_SYS_ADMIN")
		assert.Contains(t, err.Error(), "CAP_NET_ADMIN")
		assert.Empty(t, state.applied)
	})

	t.Run("bounding set already within the allow-list", func(t *testing.T) {
		state := noSetpcap(gocap.CAP_SETUID)

		require.NoError(t, capability.NewGovernorWithState(state, 0).DropTo(allow))
		assert.Len(t, state.applied, 1)
	})

	t.Run("exec as non-root keeps only the allow-list", func(t *testing.T) {
		state := noSetpcap(gocap.CAP_SETUID, gocap.CAP_SYS_ADMIN)

		require.NoError(t, capability.NewGovernorWithState(state, 1000).DropTo(allow))
		assert.ElementsMatch(t, []gocap.Cap{gocap.CAP_SETUID}, state.held(gocap.EFFECTIVE))
		assert.ElementsMatch(t, []gocap.Cap{gocap.CAP_SETUID}, state.held(gocap.PERMITTED))
	})
}

func TestGovernor_DropTo_VerifiesBoundingSet(t *testing.T) {
	state := rootInNamespace()
	// the kernel ignores the bounding part of the commit
	state.keepBounding = true

	err := capability.NewGovernorWithState(state, 0).DropTo(capability.NewAllowList(gocap.CAP_SETUID))

	var capErr *capability.CapError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, "verify", capErr.Op)
	assert.Contains(t, err.Error(), "bounding set still holds")
}

func TestGovernor_Permitted(t *testing.T) {
	state := newMemCaps().
		hold(gocap.EFFECTIVE, gocap.CAP_KILL).
		hold(gocap.PERMITTED, gocap.CAP_KILL, gocap.CAP_CHOWN)

	held, err := capability.NewGovernorWithState(state, 1000).Permitted()

	require.NoError(t, err)
	assert.Equal(t, capability.NewAllowList(gocap.CAP_CHOWN, gocap.CAP_KILL), held)
}

func TestGovernor_Snapshot(t *testing.T) {
	state := newMemCaps().
		hold(gocap.EFFECTIVE, gocap.CAP_CHOWN).
		hold(gocap.PERMITTED, gocap.CAP_CHOWN, gocap.CAP_KILL)

	snap, err := capability.NewGovernorWithState(state, 0).Snapshot()

	require.NoError(t, err)
	assert.Equal(t, []string{"CAP_CHOWN"}, snap.Effective)
	assert.Equal(t, []string{"CAP_CHOWN", "CAP_KILL"}, snap.Permitted)
	assert.Empty(t, snap.Ambient)
}
