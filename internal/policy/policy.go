// Package policy implements the zone-scoped access rules as a pure decision
// function. Given only the caller's (role, zone), an action and the zone of
// the target resource it decides allow or deny, with no side effects.
package policy

import (
	"fmt"

	"ncd-clinic-server/internal/apperr"
	"ncd-clinic-server/internal/models"
)

// Caller is the authenticated identity an operation runs as, resolved
// upstream by the auth middleware.
type Caller struct {
	ID   string
	Role models.Role
	Zone string
}

// Action names an operation subject to access control.
type Action string

const (
	ActionViewPatients  Action = "view-patients"
	ActionCreatePatient Action = "create-patient"
	ActionUpdatePatient Action = "update-patient"
	ActionDeletePatient Action = "delete-patient"

	ActionViewAppointments  Action = "view-appointments"
	ActionCreateAppointment Action = "create-appointment"
	ActionUpdateAppointment Action = "update-appointment"
	ActionDeleteAppointment Action = "delete-appointment"
	ActionRecordVisit       Action = "record-visit"
	ActionReferBack         Action = "refer-back"

	ActionViewHomeVisits  Action = "view-home-visits"
	ActionCreateHomeVisit Action = "create-home-visit"

	ActionManageUsers    Action = "manage-users"
	ActionImportPatients Action = "import-patients"
)

// AnyZone marks actions that are not scoped to a particular resource zone,
// such as listing (which is filtered rather than denied for hc callers).
const AnyZone = ""

// allowedRoles is the permitted role set per action. Actions absent from
// the hc set are hospital/admin only.
var allowedRoles = map[Action][]models.Role{
	ActionViewPatients:  {models.RoleAdmin, models.RoleHospital, models.RoleHC},
	ActionCreatePatient: {models.RoleAdmin, models.RoleHospital, models.RoleHC},
	ActionUpdatePatient: {models.RoleAdmin, models.RoleHospital},
	ActionDeletePatient: {models.RoleAdmin, models.RoleHospital},

	ActionViewAppointments:  {models.RoleAdmin, models.RoleHospital, models.RoleHC},
	ActionCreateAppointment: {models.RoleAdmin, models.RoleHospital},
	ActionUpdateAppointment: {models.RoleAdmin, models.RoleHospital},
	ActionDeleteAppointment: {models.RoleAdmin, models.RoleHospital},
	ActionRecordVisit:       {models.RoleAdmin, models.RoleHospital, models.RoleHC},
	ActionReferBack:         {models.RoleAdmin, models.RoleHospital, models.RoleHC},

	ActionViewHomeVisits:  {models.RoleAdmin, models.RoleHospital, models.RoleHC},
	ActionCreateHomeVisit: {models.RoleAdmin, models.RoleHospital, models.RoleHC},

	ActionManageUsers:    {models.RoleAdmin},
	ActionImportPatients: {models.RoleAdmin, models.RoleHospital},
}

// Authorize decides whether caller may perform action on a resource living
// in resourceZone. Pass AnyZone for actions without a single target zone.
// Admin and hospital callers are allowed for every permitted action in
// every zone; hc callers only within their own zone.
func Authorize(caller Caller, action Action, resourceZone string) error {
	roles, ok := allowedRoles[action]
	if !ok {
		return fmt.Errorf("%w: unknown action %q", apperr.ErrForbidden, action)
	}

	permitted := false
	for _, r := range roles {
		if caller.Role == r {
			permitted = true
			break
		}
	}
	if !permitted {
		return fmt.Errorf("%w: role %s may not %s", apperr.ErrForbidden, caller.Role, action)
	}

	if caller.Role == models.RoleHC && resourceZone != AnyZone && resourceZone != caller.Zone {
		return fmt.Errorf("%w: resource is outside your zone", apperr.ErrForbidden)
	}

	return nil
}

// ZoneScoped reports whether listing operations for the caller must be
// filtered down to the caller's own zone.
func ZoneScoped(caller Caller) bool {
	return caller.Role == models.RoleHC
}
