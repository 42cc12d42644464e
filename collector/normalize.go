package collector

import (
	"time"

	"procexport/models"
)

// StartedLayout is the timestamp layout of the Started column
const StartedLayout = "2006-01-02 15:04:05"

// Normalize maps raw attributes to a record using local time
func Normalize(raw models.RawProcess) models.ProcessRecord {
	return NormalizeIn(raw, time.Local)
}

// NormalizeIn maps raw attributes to a record, substituting a placeholder for
// every attribute that is missing or empty. Creation time is rendered in loc.
func NormalizeIn(raw models.RawProcess, loc *time.Location) models.ProcessRecord {
	rec := models.ProcessRecord{
		PID:     raw.PID,
		Name:    textOrUnknown(raw.Name),
		User:    textOrUnknown(raw.Username),
		Status:  textOrUnknown(raw.Status),
		Started: models.Unknown,
	}

	if raw.NumThreads != nil {
		rec.Threads = *raw.NumThreads
	}

	// zero epoch is treated as missing
	if raw.CreateTime != nil && *raw.CreateTime != 0 {
		rec.Started = time.UnixMilli(*raw.CreateTime).In(loc).Format(StartedLayout)
	}

	return rec
}

func textOrUnknown(v *string) string {
	if v == nil || *v == "" {
		return models.Unknown
	}
	return *v
}
