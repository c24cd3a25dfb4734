package capability

import (
	"fmt"
	"os"
	"strings"

	gocap "github.com/syndtr/gocapability/capability"

	errs "nsboot/pkg/errors"
	"nsboot/pkg/logger"
)

// CapError reports a failed capability operation. Err always wraps
// errs.ErrInsufficientPrivilege.
type CapError struct {
	Op  string
	Err error
}

func (e *CapError) Error() string {
	return fmt.Sprintf("capability %s: %v", e.Op, e.Err)
}

func (e *CapError) Unwrap() error {
	return e.Err
}

func privilegeError(op string, err error) *CapError {
	return &CapError{Op: op, Err: fmt.Errorf("%w: %w", errs.ErrInsufficientPrivilege, err)}
}

// Governor owns the capability state of the calling process.
type Governor struct {
	state gocap.Capabilities
	// euid is the effective uid the process will exec with. An exec as
	// uid 0 re-grants the whole bounding set.
	euid   int
	logger *logger.Logger
}

// NewGovernor loads the capability state of the calling thread.
func NewGovernor() (*Governor, error) {
	state, err := gocap.NewPid2(callingThread())
	if err != nil {
		return nil, privilegeError("open", err)
	}
	return NewGovernorWithState(state, os.Geteuid()), nil
}

// NewGovernorWithState wraps an existing capability state for a process
// that will exec with effective uid euid.
func NewGovernorWithState(state gocap.Capabilities, euid int) *Governor {
	return &Governor{
		state:  state,
		euid:   euid,
		logger: logger.New().WithField("component", "capability-governor"),
	}
}

// DropTo reduces the process to exactly the capabilities in allow.
//
// Effective, permitted and inheritable are cleared, then permitted and
// effective are set to allow. The kernel cannot raise permitted after it was
// lowered, so the staged state is committed in a single capset together with
// a bounding set narrowed to allow and an empty ambient set. capset acts on
// the calling thread only; callers must hold the OS thread that will exec.
func (g *Governor) DropTo(allow AllowList) error {
	if err := g.state.Load(); err != nil {
		return privilegeError("load", err)
	}

	var missing []string
	for _, c := range allow {
		if !g.state.Get(gocap.PERMITTED, c) {
			missing = append(missing, "CAP_"+strings.ToUpper(c.String()))
		}
	}
	if len(missing) > 0 {
		return privilegeError("check", fmt.Errorf("not held in permitted set: %s", strings.Join(missing, ",")))
	}

	canBound := g.state.Get(gocap.EFFECTIVE, gocap.CAP_SETPCAP)
	if !canBound {
		extra := g.outside(gocap.BOUNDING, allow)
		if len(extra) > 0 && g.euid == 0 {
			return privilegeError("bound", fmt.Errorf(
				"CAP_SETPCAP not effective, exec as uid 0 would regain %s", strings.Join(capNames(extra), ",")))
		}
		if len(extra) > 0 {
			g.logger.Warn("CAP_SETPCAP not effective, bounding set left unchanged", "euid", g.euid)
		}
	}

	all := knownCaps()

	g.state.Unset(gocap.EFFECTIVE, all...)
	g.state.Unset(gocap.PERMITTED, all...)
	g.state.Unset(gocap.INHERITABLE, all...)
	g.state.Set(gocap.PERMITTED, allow...)
	g.state.Set(gocap.EFFECTIVE, allow...)

	g.state.Unset(gocap.BOUNDING, all...)
	g.state.Set(gocap.BOUNDING, allow...)
	g.state.Unset(gocap.AMBIENT, all...)

	if err := g.state.Apply(gocap.CAPS | gocap.BOUNDS | gocap.AMBS); err != nil {
		return privilegeError("apply", err)
	}

	if err := g.verify(allow, canBound); err != nil {
		return err
	}

	g.logger.Debug("capabilities dropped", "allow", allow.String())
	return nil
}

// verify reloads the committed state and checks it against allow. The
// bounding set is checked only when it could be narrowed.
func (g *Governor) verify(allow AllowList, bounded bool) error {
	if err := g.state.Load(); err != nil {
		return privilegeError("verify", err)
	}

	if bounded {
		if extra := g.outside(gocap.BOUNDING, allow); len(extra) > 0 {
			return privilegeError("verify", fmt.Errorf("bounding set still holds %s", strings.Join(capNames(extra), ",")))
		}
	}

	for _, c := range knownCaps() {
		want := allow.Contains(c)
		if g.state.Get(gocap.EFFECTIVE, c) != want || g.state.Get(gocap.PERMITTED, c) != want {
			return privilegeError("verify", fmt.Errorf("CAP_%s not in the requested state", strings.ToUpper(c.String())))
		}
		if g.state.Get(gocap.INHERITABLE, c) {
			return privilegeError("verify", fmt.Errorf("CAP_%s still inheritable", strings.ToUpper(c.String())))
		}
	}
	return nil
}

// outside lists the capabilities of one loaded set that allow does not hold.
func (g *Governor) outside(which gocap.CapType, allow AllowList) []gocap.Cap {
	var extra []gocap.Cap
	for _, c := range knownCaps() {
		if g.state.Get(which, c) && !allow.Contains(c) {
			extra = append(extra, c)
		}
	}
	return extra
}

// Held returns the permitted set of the calling process.
func Held() (AllowList, error) {
	g, err := NewGovernor()
	if err != nil {
		return nil, err
	}
	return g.Permitted()
}

// Permitted reloads the state and returns the permitted set.
func (g *Governor) Permitted() (AllowList, error) {
	if err := g.state.Load(); err != nil {
		return nil, privilegeError("load", err)
	}
	var held []gocap.Cap
	for _, c := range knownCaps() {
		if g.state.Get(gocap.PERMITTED, c) {
			held = append(held, c)
		}
	}
	return NewAllowList(held...), nil
}

// Snapshot is a readable view of the five capability sets.
type Snapshot struct {
	Effective   []string `yaml:"effective"`
	Permitted   []string `yaml:"permitted"`
	Inheritable []string `yaml:"inheritable"`
	Bounding    []string `yaml:"bounding"`
	Ambient     []string `yaml:"ambient"`
}

// Snapshot reloads and returns the current sets.
func (g *Governor) Snapshot() (Snapshot, error) {
	if err := g.state.Load(); err != nil {
		return Snapshot{}, privilegeError("load", err)
	}

	collect := func(which gocap.CapType) []string {
		var held []gocap.Cap
		for _, c := range knownCaps() {
			if g.state.Get(which, c) {
				held = append(held, c)
			}
		}
		return capNames(held)
	}

	return Snapshot{
		Effective:   collect(gocap.EFFECTIVE),
		Permitted:   collect(gocap.PERMITTED),
		Inheritable: collect(gocap.INHERITABLE),
		Bounding:    collect(gocap.BOUNDING),
		Ambient:     collect(gocap.AMBIENT),
	}, nil
}

// knownCaps lists the capabilities the running kernel supports.
func knownCaps() []gocap.Cap {
	var caps []gocap.Cap
	for _, c := range gocap.List() {
		if c <= gocap.CAP_LAST_CAP {
			caps = append(caps, c)
		}
	}
	return caps
}
