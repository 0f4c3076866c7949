package service

import (
	"strings"

	"ncd-clinic-server/internal/models"
	"ncd-clinic-server/internal/policy"
	"ncd-clinic-server/internal/zones"
)

// ImportRow is one row of an uploaded patient batch, keyed by the header
// names the file happened to use.
type ImportRow map[string]string

// fieldSynonyms lists the accepted header names per logical field, in
// priority order. Exports from the various source systems mix English and
// Thai headers; the first present, non-blank match wins.
var fieldSynonyms = map[string][]string{
	"hn":       {"HN", "hn", "Hn"},
	"cid":      {"CID", "cid", "เลขบัตรประชาชน", "เลขบัตร"},
	"name":     {"Name", "name", "ชื่อ", "ชื่อ-นามสกุล", "ชื่อ - นามสกุล", "ชื่อสกุล"},
	"phone":    {"Phone", "phone", "เบอร์โทร", "เบอร์โทรศัพท์"},
	"rights":   {"Rights", "rights", "สิทธิ", "สิทธิการรักษา"},
	"clinic":   {"Clinic", "clinic", "คลินิก", "รหัสคลินิก"},
	"house_no": {"HouseNo", "house_no", "บ้านเลขที่"},
	"moo":      {"Moo", "moo", "หมู่"},
	"tumbol":   {"Tumbol", "tumbol", "ตำบล"},
	"amphoe":   {"Amphoe", "amphoe", "อำเภอ"},
	"province": {"Province", "province", "จังหวัด"},
	"zone":     {"Zone", "zone", "เขตพื้นที่", "รพ.สต."},
}

// resolve returns the trimmed value of the first synonym present in the
// row with a non-blank value; absent fields yield the empty string.
func resolve(row ImportRow, field string) string {
	for _, key := range fieldSynonyms[field] {
		if v, ok := row[key]; ok {
			v = strings.TrimSpace(v)
			if v != "" {
				return v
			}
		}
	}
	return ""
}

// ImportService reconciles an externally supplied patient batch against the
// registry: header-synonym resolution, HN/CID dedup against both the store
// and earlier rows of the same batch, and zone inference for rows without
// an explicit zone.
type ImportService struct {
	patients PatientRepository
}

func NewImportService(patients PatientRepository) *ImportService {
	return &ImportService{patients: patients}
}

// ImportPatients inserts the importable rows of a batch and returns how
// many were accepted. A bad row is skipped, never fatal to the batch, so
// re-running the same file is safe: the second run inserts nothing because
// every HN and CID now collides with persisted data.
func (s *ImportService) ImportPatients(caller policy.Caller, rows []ImportRow) (int, error) {
	if err := policy.Authorize(caller, policy.ActionImportPatients, policy.AnyZone); err != nil {
		return 0, err
	}

	seenHNs := make(map[string]bool)
	seenCIDs := make(map[string]bool)
	count := 0

	for _, row := range rows {
		hn := resolve(row, "hn")
		if hn == "" || seenHNs[hn] {
			continue
		}
		if exists, err := s.patients.ExistsByHN(hn); err != nil || exists {
			continue
		}

		cid := resolve(row, "cid")
		if cid == "" || seenCIDs[cid] {
			continue
		}
		if exists, err := s.patients.ExistsByCID(cid); err != nil || exists {
			continue
		}

		seenHNs[hn] = true
		seenCIDs[cid] = true

		zone := resolve(row, "zone")
		if zone == "" || strings.EqualFold(zone, "nan") {
			zone = zones.Infer(resolve(row, "tumbol"), resolve(row, "moo"))
		}

		patient := &models.Patient{
			HN:            hn,
			Name:          resolve(row, "name"),
			CID:           cid,
			Phone:         resolve(row, "phone"),
			MedicalRights: resolve(row, "rights"),
			Clinic:        resolve(row, "clinic"),
			HouseNo:       resolve(row, "house_no"),
			Moo:           resolve(row, "moo"),
			Tumbol:        resolve(row, "tumbol"),
			Amphoe:        resolve(row, "amphoe"),
			Province:      resolve(row, "province"),
			HCZone:        zone,
		}

		if err := s.patients.Create(patient); err != nil {
			// Row-level failure only; the unique indexes backstop any
			// race the pre-checks missed.
			continue
		}
		count++
	}

	return count, nil
}
