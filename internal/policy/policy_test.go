package policy

import (
	"errors"
	"testing"

	"ncd-clinic-server/internal/apperr"
	"ncd-clinic-server/internal/models"
)

func TestAuthorizeHCZoneScoping(t *testing.T) {
	caller := Caller{ID: "u1", Role: models.RoleHC, Zone: "Z1"}

	zoneActions := []Action{ActionRecordVisit, ActionReferBack}
	for _, action := range zoneActions {
		if err := Authorize(caller, action, "Z1"); err != nil {
			t.Errorf("Authorize(hc Z1, %s, Z1) = %v, want allow", action, err)
		}
		err := Authorize(caller, action, "Z2")
		if err == nil {
			t.Errorf("Authorize(hc Z1, %s, Z2) allowed, want deny", action)
		} else if !errors.Is(err, apperr.ErrForbidden) {
			t.Errorf("Authorize(hc Z1, %s, Z2) = %v, want ErrForbidden", action, err)
		}
	}
}

func TestAuthorizeHCActionSet(t *testing.T) {
	caller := Caller{ID: "u1", Role: models.RoleHC, Zone: "Z1"}

	allowed := []Action{
		ActionViewPatients, ActionCreatePatient,
		ActionViewAppointments, ActionRecordVisit, ActionReferBack,
		ActionViewHomeVisits, ActionCreateHomeVisit,
	}
	for _, action := range allowed {
		if err := Authorize(caller, action, AnyZone); err != nil {
			t.Errorf("Authorize(hc, %s) = %v, want allow", action, err)
		}
	}

	denied := []Action{
		ActionUpdatePatient, ActionDeletePatient,
		ActionCreateAppointment, ActionUpdateAppointment, ActionDeleteAppointment,
		ActionManageUsers, ActionImportPatients,
	}
	for _, action := range denied {
		err := Authorize(caller, action, AnyZone)
		if !errors.Is(err, apperr.ErrForbidden) {
			t.Errorf("Authorize(hc, %s) = %v, want ErrForbidden", action, err)
		}
	}
}

func TestAuthorizeHospitalAndAdminAllowAllZones(t *testing.T) {
	actions := []Action{
		ActionViewPatients, ActionCreatePatient, ActionUpdatePatient, ActionDeletePatient,
		ActionViewAppointments, ActionCreateAppointment, ActionUpdateAppointment, ActionDeleteAppointment,
		ActionRecordVisit, ActionReferBack,
		ActionViewHomeVisits, ActionCreateHomeVisit,
		ActionImportPatients,
	}

	for _, role := range []models.Role{models.RoleAdmin, models.RoleHospital} {
		caller := Caller{ID: "u1", Role: role}
		for _, action := range actions {
			for _, zone := range []string{AnyZone, "Z1", "Z2"} {
				if err := Authorize(caller, action, zone); err != nil {
					t.Errorf("Authorize(%s, %s, %q) = %v, want allow", role, action, zone, err)
				}
			}
		}
	}
}

func TestAuthorizeManageUsersAdminOnly(t *testing.T) {
	if err := Authorize(Caller{ID: "a", Role: models.RoleAdmin}, ActionManageUsers, AnyZone); err != nil {
		t.Errorf("admin manage-users = %v, want allow", err)
	}
	for _, role := range []models.Role{models.RoleHospital, models.RoleHC} {
		err := Authorize(Caller{ID: "u", Role: role}, ActionManageUsers, AnyZone)
		if !errors.Is(err, apperr.ErrForbidden) {
			t.Errorf("%s manage-users = %v, want ErrForbidden", role, err)
		}
	}
}

func TestAuthorizeUnknownAction(t *testing.T) {
	err := Authorize(Caller{ID: "a", Role: models.RoleAdmin}, Action("launch-rocket"), AnyZone)
	if !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("unknown action = %v, want ErrForbidden", err)
	}
}

func TestAuthorizeIsDeterministic(t *testing.T) {
	caller := Caller{ID: "u1", Role: models.RoleHC, Zone: "Z1"}
	first := Authorize(caller, ActionRecordVisit, "Z2")
	for i := 0; i < 10; i++ {
		got := Authorize(caller, ActionRecordVisit, "Z2")
		if (got == nil) != (first == nil) {
			t.Fatalf("Authorize not deterministic: %v vs %v", first, got)
		}
	}
}

func TestZoneScoped(t *testing.T) {
	if !ZoneScoped(Caller{Role: models.RoleHC, Zone: "Z1"}) {
		t.Error("hc caller should be zone scoped")
	}
	if ZoneScoped(Caller{Role: models.RoleHospital}) {
		t.Error("hospital caller should not be zone scoped")
	}
	if ZoneScoped(Caller{Role: models.RoleAdmin}) {
		t.Error("admin caller should not be zone scoped")
	}
}
