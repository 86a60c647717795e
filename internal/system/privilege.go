package system

import (
	"errors"
	"os"
)

// ErrPrivilege is returned when a privileged operation is requested by a
// process that does not hold superuser privileges.
var ErrPrivilege = errors.New("superuser privileges required")

// PrivilegeChecker reports whether the current process may perform
// privileged filesystem mutations. It is a pure predicate: checking never
// touches the filesystem, so callers can evaluate it once at the boundary
// before constructing anything that writes.
type PrivilegeChecker interface {
	IsElevated() bool
}

// EUIDChecker checks privilege via the process's effective user ID.
type EUIDChecker struct{}

// NewPrivilegeChecker returns the default effective-UID based checker.
func NewPrivilegeChecker() PrivilegeChecker {
	return EUIDChecker{}
}

// IsElevated returns true when the effective user is the superuser.
func (EUIDChecker) IsElevated() bool {
	return os.Geteuid() == 0
}
