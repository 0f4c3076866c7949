// Package zones maps a patient's address (subdistrict + village number) to
// the health-center zone responsible for it. The mapping is a small fixed
// decision table for the Nong Hin district catchment.
package zones

import "strings"

// Zone names, matching User.Zone of the hc accounts.
const (
	ZoneNongHinHospital = "รพ.หนองหิน"
	ZoneChaloemPhrakiat = "สถานีอนามัยเฉลิมพระเกียรติ"
	ZoneLak160          = "รพ.สต.หลักร้อยหกสิบ"
	ZoneNoiSamakkhi     = "รพ.สต.บ้านน้อยสามัคคี"
	ZonePuanPhu         = "รพ.สต.บ้านปวนพุ"
	ZoneNongMakKaew     = "รพ.สต.บ้านหนองหมากแก้ว"
)

// Infer returns the zone covering the given subdistrict (tumbol) and
// village number (moo). Village numbers sometimes arrive as fractional
// strings like "6.0"; the fractional part is discarded before matching.
// Unrecognised subdistricts fall back to the district hospital zone, so
// the function is total.
func Infer(tumbol, moo string) string {
	t := strings.TrimSpace(tumbol)
	m, _, _ := strings.Cut(strings.TrimSpace(moo), ".")

	switch t {
	case "ปวนพุ":
		switch m {
		case "6", "7", "9", "12", "15":
			return ZoneNongMakKaew
		}
		return ZonePuanPhu

	case "หนองหิน":
		switch m {
		case "2":
			return ZoneNongHinHospital
		case "8", "9", "10", "11", "12", "14":
			return ZoneLak160
		}
		return ZoneChaloemPhrakiat

	case "ตาดข่า":
		return ZoneNoiSamakkhi
	}

	return ZoneNongHinHospital
}
