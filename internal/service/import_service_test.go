package service

import (
	"errors"
	"testing"

	"ncd-clinic-server/internal/apperr"
	"ncd-clinic-server/internal/zones"
)

func TestImportPatientsRequiresHospitalOrAdmin(t *testing.T) {
	svc := NewImportService(newMockPatientRepo())

	_, err := svc.ImportPatients(hcCallerZ1, []ImportRow{{"HN": "1001", "CID": "1111111111111"}})
	if !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("hc import = %v, want ErrForbidden", err)
	}
}

func TestImportPatientsSkipsRowsWithoutIdentity(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewImportService(repo)

	rows := []ImportRow{
		{"HN": "1001", "CID": "1111111111111", "Name": "A", "Zone": "Z1"},
		{"HN": "", "CID": "2222222222222", "Name": "B", "Zone": "Z1"}, // no HN
		{"HN": "1003", "CID": "", "Name": "C", "Zone": "Z1"},          // no CID
		{"HN": "1004", "CID": "4444444444444", "Name": "D", "Zone": "Z1"},
	}

	count, err := svc.ImportPatients(hospitalCaller, rows)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if count != 2 {
		t.Errorf("accepted = %d, want 2", count)
	}
}

func TestImportPatientsInBatchDedup(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewImportService(repo)

	rows := []ImportRow{
		{"HN": "1001", "CID": "1111111111111", "Zone": "Z1"},
		{"HN": "1001", "CID": "2222222222222", "Zone": "Z1"}, // repeated HN
		{"HN": "1002", "CID": "1111111111111", "Zone": "Z1"}, // repeated CID
	}

	count, err := svc.ImportPatients(hospitalCaller, rows)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if count != 1 {
		t.Errorf("accepted = %d, want 1", count)
	}
}

func TestImportPatientsIsIdempotent(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewImportService(repo)

	rows := []ImportRow{
		{"HN": "1001", "CID": "1111111111111", "Zone": "Z1"},
		{"HN": "1002", "CID": "2222222222222", "Zone": "Z1"},
		{"HN": "1003", "CID": "3333333333333", "Zone": "Z2"},
	}

	first, err := svc.ImportPatients(hospitalCaller, rows)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first != 3 {
		t.Errorf("first run accepted = %d, want 3", first)
	}

	second, err := svc.ImportPatients(hospitalCaller, rows)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second != 0 {
		t.Errorf("second run accepted = %d, want 0", second)
	}
}

func TestImportPatientsHeaderSynonyms(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewImportService(repo)

	// Thai headers, as exported by the provincial registry system.
	rows := []ImportRow{{
		"Hn":            "1001",
		"เลขบัตรประชาชน": "1111111111111",
		"ชื่อ-นามสกุล":   "สมชาย ใจดี",
		"เบอร์โทร":       "0812345678",
		"สิทธิ":          "UC",
		"เขตพื้นที่":     "Z1",
	}}

	count, err := svc.ImportPatients(hospitalCaller, rows)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if count != 1 {
		t.Fatalf("accepted = %d, want 1", count)
	}

	patients, _ := repo.ListAll()
	p := patients[0]
	if p.HN != "1001" || p.CID != "1111111111111" {
		t.Errorf("identity = (%q, %q)", p.HN, p.CID)
	}
	if p.Name != "สมชาย ใจดี" || p.Phone != "0812345678" || p.MedicalRights != "UC" {
		t.Errorf("fields not resolved through synonyms: %+v", p)
	}
	if p.HCZone != "Z1" {
		t.Errorf("zone = %q, want Z1", p.HCZone)
	}
}

func TestImportPatientsInfersZone(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewImportService(repo)

	rows := []ImportRow{
		// No zone column at all.
		{"HN": "1001", "CID": "1111111111111", "Tumbol": "ตาดข่า", "Moo": "3"},
		// A pandas-style "nan" zone with a fractional village number.
		{"HN": "1002", "CID": "2222222222222", "Zone": "nan", "Tumbol": "ปวนพุ", "Moo": "6.0"},
		// Unknown subdistrict falls back to the district hospital.
		{"HN": "1003", "CID": "3333333333333", "Tumbol": "ที่อื่น", "Moo": "1"},
	}

	count, err := svc.ImportPatients(hospitalCaller, rows)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if count != 3 {
		t.Fatalf("accepted = %d, want 3", count)
	}

	wantZones := map[string]string{
		"1001": zones.ZoneNoiSamakkhi,
		"1002": zones.ZoneNongMakKaew,
		"1003": zones.ZoneNongHinHospital,
	}
	patients, _ := repo.ListAll()
	for _, p := range patients {
		if p.HCZone != wantZones[p.HN] {
			t.Errorf("HN %s zone = %q, want %q", p.HN, p.HCZone, wantZones[p.HN])
		}
	}
}

func TestImportThenScheduleFlow(t *testing.T) {
	// End to end through the services: a 3-row batch with one bad row,
	// re-import, then the appointment lifecycle on an imported patient.
	patientRepo := newMockPatientRepo()
	importSvc := NewImportService(patientRepo)
	apptSvc := NewAppointmentService(newMockAppointmentRepo(patientRepo), patientRepo)

	rows := []ImportRow{
		{"HN": "1001", "CID": "1111111111111", "Zone": "Z1"},
		{"HN": "", "CID": "2222222222222", "Zone": "Z1"},
		{"HN": "1003", "CID": "3333333333333", "Zone": "Z1"},
	}

	count, err := importSvc.ImportPatients(hospitalCaller, rows)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if count != 2 {
		t.Fatalf("first import accepted = %d, want 2", count)
	}

	again, _ := importSvc.ImportPatients(hospitalCaller, rows)
	if again != 0 {
		t.Fatalf("re-import accepted = %d, want 0", again)
	}

	patients, _ := patientRepo.ListAll()
	var target string
	for _, p := range patients {
		if p.HN == "1001" {
			target = p.ID
		}
	}

	appt, err := apptSvc.Create(hospitalCaller, CreateAppointmentInput{PatientID: target, Date: "2024-01-15"})
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	if appt.Status != "pending" {
		t.Fatalf("status = %q, want pending", appt.Status)
	}

	if _, err := apptSvc.RecordVisit(hospitalCaller, appt.ID, VisitReadings{BPSys: intPtr(120)}); err != nil {
		t.Fatalf("record visit: %v", err)
	}

	_, err = apptSvc.Update(hospitalCaller, appt.ID, UpdateAppointmentInput{Note: strPtr("edit")})
	if !errors.Is(err, apperr.ErrInvalidOperation) {
		t.Fatalf("update after completion = %v, want ErrInvalidOperation", err)
	}
}
