package validation

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"nsboot/internal/container"
	errs "nsboot/pkg/errors"
	"nsboot/pkg/logger"
	osinterface "nsboot/pkg/os"
)

// Check is the outcome of one host requirement.
type Check struct {
	Name   string `yaml:"name"`
	Passed bool   `yaml:"passed"`
	Detail string `yaml:"detail,omitempty"`
}

// Report collects every check run for one namespace set.
type Report struct {
	Kernel string  `yaml:"kernel"`
	Checks []Check `yaml:"checks"`
}

// Failed lists the checks that did not pass.
func (r Report) Failed() []Check {
	var failed []Check
	for _, c := range r.Checks {
		if !c.Passed {
			failed = append(failed, c)
		}
	}
	return failed
}

type kernelVersion struct {
	major, minor int
}

func (v kernelVersion) String() string {
	return fmt.Sprintf("%d.%d", v.major, v.minor)
}

func (v kernelVersion) atLeast(want kernelVersion) bool {
	return v.major > want.major || (v.major == want.major && v.minor >= want.minor)
}

// Oldest kernels that can create each namespace kind unprivileged or not.
var minKernel = map[container.Namespace]kernelVersion{
	container.NamespaceUser:   {3, 8},
	container.NamespaceCgroup: {4, 6},
}

// HostValidator checks that the host can create the requested namespaces
type HostValidator struct {
	osInterface osinterface.OsInterface
	procRoot    string
	logger      *logger.Logger
}

func NewHostValidator(osInterface osinterface.OsInterface) *HostValidator {
	return NewHostValidatorWithRoot(osInterface, "/proc")
}

// NewHostValidatorWithRoot reads kernel state below procRoot instead of /proc.
func NewHostValidatorWithRoot(osInterface osinterface.OsInterface, procRoot string) *HostValidator {
	return &HostValidator{
		osInterface: osInterface,
		procRoot:    procRoot,
		logger:      logger.New().WithField("component", "host-validator"),
	}
}

// Validate runs every check relevant to namespaces. The report is complete
// even when an error is returned.
func (hv *HostValidator) Validate(namespaces container.Namespaces) (Report, error) {
	if runtime.GOOS != "linux" {
		return Report{}, fmt.Errorf("%w: unsupported platform: %s (linux namespaces required)",
			errs.ErrUnsupportedConfiguration, runtime.GOOS)
	}

	var report Report

	version, err := hv.kernelVersion(&report)
	if err != nil {
		hv.logger.Warn("cannot determine kernel version", "error", err)
	}

	for _, name := range namespaces.Names() {
		ns := container.Namespace(name)
		report.Checks = append(report.Checks, hv.checkNamespaceFile(ns))

		if want, ok := minKernel[ns]; ok && version != nil {
			report.Checks = append(report.Checks, Check{
				Name:   fmt.Sprintf("kernel >= %s for %s namespace", want, ns),
				Passed: version.atLeast(want),
				Detail: "running " + version.String(),
			})
		}
	}

	if namespaces.Has(container.NamespaceUser) {
		report.Checks = append(report.Checks, hv.checkUserNamespaceSysctls()...)
	}

	failed := report.Failed()
	for _, c := range failed {
		hv.logger.Warn("host check failed", "check", c.Name, "detail", c.Detail)
	}
	if len(failed) > 0 {
		return report, fmt.Errorf("%w: %d of %d host checks failed",
			errs.ErrUnsupportedConfiguration, len(failed), len(report.Checks))
	}

	hv.logger.Info("host requirements validated",
		"namespaces", namespaces.String(),
		"kernel", report.Kernel)
	return report, nil
}

func (hv *HostValidator) checkNamespaceFile(ns container.Namespace) Check {
	path := filepath.Join(hv.procRoot, "self", "ns", ns.ProcFile())
	check := Check{Name: fmt.Sprintf("%s namespace supported", ns), Detail: path}

	_, err := hv.osInterface.Stat(path)
	switch {
	case err == nil:
		check.Passed = true
	case hv.osInterface.IsNotExist(err):
		check.Detail = path + " missing, kernel built without this namespace"
	default:
		check.Detail = err.Error()
	}
	return check
}

// checkUserNamespaceSysctls reads the knobs distributions use to switch off
// user namespaces. A knob that does not exist does not restrict anything.
func (hv *HostValidator) checkUserNamespaceSysctls() []Check {
	var checks []Check

	maxPath := filepath.Join(hv.procRoot, "sys", "user", "max_user_namespaces")
	if value, ok := hv.readSysctl(maxPath); ok {
		checks = append(checks, Check{
			Name:   "user namespaces allowed",
			Passed: value != "0",
			Detail: "max_user_namespaces=" + value,
		})
	}

	if hv.osInterface.Getuid() == 0 {
		return checks
	}

	clonePath := filepath.Join(hv.procRoot, "sys", "kernel", "unprivileged_userns_clone")
	if value, ok := hv.readSysctl(clonePath); ok {
		checks = append(checks, Check{
			Name:   "unprivileged user namespaces allowed",
			Passed: value != "0",
			Detail: "unprivileged_userns_clone=" + value,
		})
	}
	return checks
}

func (hv *HostValidator) readSysctl(path string) (string, bool) {
	data, err := hv.osInterface.ReadFile(path)
	if err != nil {
		if !hv.osInterface.IsNotExist(err) {
			hv.logger.Debug("cannot read sysctl", "path", path, "error", err)
		}
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

// kernelVersion parses /proc/version and records the release in report.
func (hv *HostValidator) kernelVersion(report *Report) (*kernelVersion, error) {
	data, err := hv.osInterface.ReadFile(filepath.Join(hv.procRoot, "version"))
	if err != nil {
		return nil, fmt.Errorf("cannot read kernel version: %w", err)
	}

	fields := strings.Fields(string(data))
	if len(fields) < 3 {
		return nil, fmt.Errorf("unexpected kernel version format")
	}
	report.Kernel = fields[2]

	parts := strings.SplitN(fields[2], ".", 3)
	if len(parts) < 2 {
		return nil, fmt.Errorf("unexpected kernel release %q", fields[2])
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("unexpected kernel release %q: %w", fields[2], err)
	}
	minor, err := strconv.Atoi(leadingDigits(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("unexpected kernel release %q: %w", fields[2], err)
	}

	return &kernelVersion{major: major, minor: minor}, nil
}

// leadingDigits trims suffixes such as "-rc1" from a release component.
func leadingDigits(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}
