package relay

import "time"

// CentralStandard is a fixed UTC-6 zone. Daylight saving is ignored on
// purpose so the target date matches the legacy job's behavior.
var CentralStandard = time.FixedZone("UTC-6", -6*60*60)

// TargetDate returns the YYYY-MM-DD date of now in CentralStandard.
func TargetDate(now time.Time) string {
	return now.In(CentralStandard).Format("2006-01-02")
}
