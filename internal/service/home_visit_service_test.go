package service

import (
	"errors"
	"testing"
	"time"

	"ncd-clinic-server/internal/apperr"
	"ncd-clinic-server/internal/models"
)

func TestCreateHomeVisitRequiresIdentity(t *testing.T) {
	svc := NewHomeVisitService(newMockHomeVisitRepo(newMockPatientRepo()))

	_, err := svc.Create(hospitalCaller, HomeVisitInput{Kind: models.VisitKindPatient, Note: "no id"})
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Errorf("create without CID or patient = %v, want ErrInvalidInput", err)
	}

	if _, err := svc.Create(hospitalCaller, HomeVisitInput{Kind: models.VisitKindOSM, CID: "1234567890123"}); err != nil {
		t.Errorf("create with CID = %v, want nil", err)
	}

	if _, err := svc.Create(hospitalCaller, HomeVisitInput{Kind: models.VisitKindPatient, PatientID: strPtr("p-1")}); err != nil {
		t.Errorf("create with patient link = %v, want nil", err)
	}
}

func TestCreateHomeVisitRejectsUnknownKind(t *testing.T) {
	svc := NewHomeVisitService(newMockHomeVisitRepo(newMockPatientRepo()))

	_, err := svc.Create(hospitalCaller, HomeVisitInput{Kind: "villager", CID: "1234567890123"})
	if !errors.Is(err, apperr.ErrInvalidInput) {
		t.Errorf("unknown kind = %v, want ErrInvalidInput", err)
	}
}

func TestCreateHomeVisitDerivesSourceAndZone(t *testing.T) {
	svc := NewHomeVisitService(newMockHomeVisitRepo(newMockPatientRepo()))

	fromHospital, err := svc.Create(hospitalCaller, HomeVisitInput{Kind: models.VisitKindPatient, CID: "1"})
	if err != nil {
		t.Fatalf("hospital create: %v", err)
	}
	if fromHospital.Source != models.VisitSourceHospital {
		t.Errorf("hospital source = %q, want hospital", fromHospital.Source)
	}

	fromAdmin, _ := svc.Create(adminCaller, HomeVisitInput{Kind: models.VisitKindPatient, CID: "2"})
	if fromAdmin.Source != models.VisitSourceHospital {
		t.Errorf("admin source = %q, want hospital", fromAdmin.Source)
	}

	fromHC, _ := svc.Create(hcCallerZ1, HomeVisitInput{Kind: models.VisitKindOSM, CID: "3"})
	if fromHC.Source != models.VisitSourceHC {
		t.Errorf("hc source = %q, want hc", fromHC.Source)
	}
	if fromHC.CreatorZone != "Z1" {
		t.Errorf("hc creator zone = %q, want Z1", fromHC.CreatorZone)
	}
}

func TestCreateHomeVisitStampsLocalCalendarDay(t *testing.T) {
	svc := NewHomeVisitService(newMockHomeVisitRepo(newMockPatientRepo()))

	visit, err := svc.Create(hcCallerZ1, HomeVisitInput{Kind: models.VisitKindOSM, CID: "1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	now := time.Now()
	want := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if !visit.VisitDate.Equal(want) {
		t.Errorf("visit date = %v, want local midnight %v", visit.VisitDate, want)
	}
	// An entry created at 01:00 ICT belongs to that day, not to the UTC
	// date still running from the evening before.
	if visit.VisitDate.Location() != now.Location() {
		t.Errorf("visit date location = %v, want %v", visit.VisitDate.Location(), now.Location())
	}
}

func TestListHomeVisitsDualZoneFilter(t *testing.T) {
	patientRepo := newMockPatientRepo()
	patientSvc := NewPatientService(patientRepo)
	svc := NewHomeVisitService(newMockHomeVisitRepo(patientRepo))

	z1Patient, _ := patientSvc.Create(hospitalCaller, patientInput("1001", "1111111111111", "Z1"))
	z2Patient, _ := patientSvc.Create(hospitalCaller, patientInput("1002", "2222222222222", "Z2"))

	// Created by hc in Z1, unlinked: visible to Z1 via creator zone.
	svc.Create(hcCallerZ1, HomeVisitInput{Kind: models.VisitKindOSM, CID: "10"})
	// Created by hospital, linked to a Z1 patient: visible to Z1 via patient zone.
	svc.Create(hospitalCaller, HomeVisitInput{Kind: models.VisitKindPatient, PatientID: &z1Patient.ID})
	// Created by hospital, linked to a Z2 patient: not visible to Z1.
	svc.Create(hospitalCaller, HomeVisitInput{Kind: models.VisitKindPatient, PatientID: &z2Patient.ID})
	// Created by hospital, unlinked CID entry: creator zone empty, no patient;
	// visible to Z1 by neither half of the predicate.
	svc.Create(hospitalCaller, HomeVisitInput{Kind: models.VisitKindOSM, CID: "11"})

	all, err := svc.List(hospitalCaller)
	if err != nil {
		t.Fatalf("hospital list: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("hospital sees %d entries, want 4", len(all))
	}

	scoped, err := svc.List(hcCallerZ1)
	if err != nil {
		t.Fatalf("hc list: %v", err)
	}
	if len(scoped) != 2 {
		t.Errorf("hc Z1 sees %d entries, want 2", len(scoped))
	}
}
