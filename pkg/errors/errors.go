// Package errors holds the failure taxonomy shared by the host and the
// isolated process. Component errors wrap one of these sentinels; callers
// branch with errors.Is.
package errors

import "errors"

var (
	// ErrPermissionDenied means the host lacks the privilege to create the
	// requested namespaces.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrUnsupportedConfiguration means the kernel rejected the namespace
	// flag combination or the container spec contradicts itself.
	ErrUnsupportedConfiguration = errors.New("unsupported configuration")
	// ErrResourceExhausted means process creation ran out of memory, pids,
	// namespaces or file descriptors.
	ErrResourceExhausted = errors.New("resource exhausted")

	ErrInvalidMapping = errors.New("invalid identity mapping")
	ErrAlreadyMapped  = errors.New("identity mapping already applied")

	ErrInsufficientPrivilege = errors.New("insufficient privilege")
	ErrImageReplacement      = errors.New("image replacement failed")

	// ErrAborted is delivered to the isolated process when the host gives up
	// before releasing it.
	ErrAborted = errors.New("launch aborted by host")
)
