// Package auth holds the authorization policy for patient-scoped resources.
package auth

import (
	"github.com/ycelik/clinicore/internal/app/models"
)

// Identity is the authenticated caller, extracted once from the bearer token
// by the auth middleware and threaded explicitly through every
// authorization-sensitive call. Services never read ambient request state.
type Identity struct {
	UserID    int64
	UserName  string
	Role      models.Role
	PatientID *int64
}

// CanAccessPatient is the single decision function answering "may this
// caller act on this patient's data?". It is pure and side-effect-free.
//
//   - unauthenticated callers are denied
//   - Admin and Doctor roles are allowed unconditionally
//   - with no target patient the scope is ambiguous and defaults closed
//   - otherwise the caller's patientId claim must equal the target
func CanAccessPatient(caller *Identity, patientID *int64) bool {
	if caller == nil {
		return false
	}
	if caller.Role.IsPrivileged() {
		return true
	}
	if patientID == nil {
		return false
	}
	if caller.PatientID == nil {
		return false
	}
	return *caller.PatientID == *patientID
}
