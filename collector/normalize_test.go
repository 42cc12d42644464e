package collector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"procexport/models"
)

func ptr[T any](v T) *T { return &v }

func TestNormalizeFallbacks(t *testing.T) {
	rec := Normalize(models.RawProcess{PID: 42})

	assert.Equal(t, models.ProcessRecord{
		Name:    "Unknown",
		PID:     42,
		User:    "Unknown",
		Started: "Unknown",
		Threads: 0,
		Status:  "Unknown",
	}, rec)
}

func TestNormalizeEmptyValues(t *testing.T) {
	rec := Normalize(models.RawProcess{
		PID:        7,
		Name:       ptr(""),
		Username:   ptr(""),
		Status:     ptr(""),
		CreateTime: ptr(int64(0)),
	})

	assert.Equal(t, "Unknown", rec.Name)
	assert.Equal(t, "Unknown", rec.User)
	assert.Equal(t, "Unknown", rec.Status)
	assert.Equal(t, "Unknown", rec.Started)
}

func TestNormalizeStartedFormat(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	created := time.Date(2024, 3, 9, 21, 5, 7, 0, time.UTC)

	rec := NormalizeIn(models.RawProcess{
		PID:        1,
		CreateTime: ptr(created.UnixMilli()),
	}, loc)

	assert.Equal(t, "2024-03-09 23:05:07", rec.Started)
}

func TestNormalizeLocalTime(t *testing.T) {
	ms := int64(1700000000123)
	rec := Normalize(models.RawProcess{PID: 1, CreateTime: ptr(ms)})

	assert.Equal(t, time.UnixMilli(ms).Local().Format("2006-01-02 15:04:05"), rec.Started)
}

func TestNormalizeCompleteRecordIsUnchanged(t *testing.T) {
	loc := time.UTC
	created := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)
	raw := models.RawProcess{
		PID:        1234,
		Name:       ptr("sshd"),
		Username:   ptr("root"),
		CreateTime: ptr(created.UnixMilli()),
		Status:     ptr("sleep"),
		NumThreads: ptr(int32(3)),
	}

	first := NormalizeIn(raw, loc)
	want := models.ProcessRecord{
		Name:    "sshd",
		PID:     1234,
		User:    "root",
		Started: "2023-11-14 22:13:20",
		Threads: 3,
		Status:  "sleep",
	}
	assert.Equal(t, want, first)

	// feeding the normalized values back produces the same record
	again := NormalizeIn(models.RawProcess{
		PID:        first.PID,
		Name:       ptr(first.Name),
		Username:   ptr(first.User),
		CreateTime: raw.CreateTime,
		Status:     ptr(first.Status),
		NumThreads: ptr(first.Threads),
	}, loc)
	assert.Equal(t, first, again)
}
