package container

import (
	"errors"

	errs "nsboot/pkg/errors"
)

// Exit statuses of the isolated process while it is still the bootstrap.
// Once the target image is running the status is the target's own.
const (
	// ExitLaunchFailure: the process could not be created, or the child
	// failed before it started waiting for its identity mapping.
	ExitLaunchFailure = 121
	// ExitMapFailure: the identity mapping was not written, or the host
	// aborted while the child waited for it.
	ExitMapFailure = 122
	// ExitCapabilityFailure: the identity switch or the capability drop
	// failed.
	ExitCapabilityFailure = 123
	// ExitExecFailure: the target could not be resolved or exec'd. Matches
	// the shell's "command not found" status.
	ExitExecFailure = 127
)

// ExitCodeForStage maps the last state a failed child reached to its exit
// status.
func ExitCodeForStage(stage State) int {
	switch stage {
	case StateWaitingForIdentityMap:
		return ExitMapFailure
	case StateIdentityMapped:
		return ExitCapabilityFailure
	case StateCapabilitiesDropped:
		return ExitExecFailure
	}
	return ExitLaunchFailure
}

// ExitCodeForError maps a host-side launch error to an exit status.
func ExitCodeForError(err error) int {
	var stageErr *StageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &stageErr):
		return stageErr.ExitCode
	case errors.Is(err, errs.ErrInvalidMapping), errors.Is(err, errs.ErrAlreadyMapped):
		return ExitMapFailure
	case errors.Is(err, errs.ErrInsufficientPrivilege):
		return ExitCapabilityFailure
	case errors.Is(err, errs.ErrImageReplacement):
		return ExitExecFailure
	}
	return ExitLaunchFailure
}
