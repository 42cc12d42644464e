package collector

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"syscall"

	"procexport/models"

	"github.com/shirou/gopsutil/v3/process"
	"go.uber.org/zap"
)

// Handle reads the attributes of one enumerated process
type Handle interface {
	PID() int32
	Name(ctx context.Context) (string, error)
	Username(ctx context.Context) (string, error)
	CreateTime(ctx context.Context) (int64, error)
	Status(ctx context.Context) ([]string, error)
	NumThreads(ctx context.Context) (int32, error)
}

// Lister enumerates the processes visible to the caller
type Lister interface {
	Processes(ctx context.Context) ([]Handle, error)
}

// SkipReason explains why a process was left out of a snapshot
type SkipReason string

const (
	NotSkipped SkipReason = ""
	SkipGone   SkipReason = "gone"
	SkipDenied SkipReason = "access-denied"
	SkipZombie SkipReason = "zombie"
)

// ReadResult is the outcome of reading one process: either raw attributes
// or the reason the process has to be skipped.
type ReadResult struct {
	Raw  models.RawProcess
	Skip SkipReason
	Err  error
}

func (r ReadResult) Skipped() bool {
	return r.Skip != NotSkipped
}

// ReadProcess reads every attribute of h. Attributes that fail for reasons
// other than the process vanishing or refusing access are left nil.
func ReadProcess(ctx context.Context, h Handle) ReadResult {
	raw := models.RawProcess{PID: h.PID()}
	partial := false

	// fail records a read error and reports whether the process must be skipped
	var skip ReadResult
	fail := func(attr string, err error) bool {
		if reason := classify(err); reason != NotSkipped {
			skip = ReadResult{Raw: raw, Skip: reason, Err: fmt.Errorf("read %s: %w", attr, err)}
			return true
		}
		partial = true
		return false
	}

	statuses, err := h.Status(ctx)
	if err != nil {
		if fail("status", err) {
			return skip
		}
	} else if s := firstNonEmpty(statuses); s != "" {
		raw.Status = &s
	}

	if name, err := h.Name(ctx); err != nil {
		if fail("name", err) {
			return skip
		}
	} else {
		raw.Name = &name
	}

	if user, err := h.Username(ctx); err != nil {
		if fail("username", err) {
			return skip
		}
	} else {
		raw.Username = &user
	}

	if created, err := h.CreateTime(ctx); err != nil {
		if fail("create time", err) {
			return skip
		}
	} else {
		raw.CreateTime = &created
	}

	if threads, err := h.NumThreads(ctx); err != nil {
		if fail("threads", err) {
			return skip
		}
	} else {
		raw.NumThreads = &threads
	}

	// a zombie whose attributes could not be read is dropped like a vanished one
	if partial && raw.Status != nil && *raw.Status == process.Zombie {
		return ReadResult{Raw: raw, Skip: SkipZombie}
	}

	return ReadResult{Raw: raw}
}

func classify(err error) SkipReason {
	switch {
	case errors.Is(err, process.ErrorProcessNotRunning),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, syscall.ESRCH):
		return SkipGone
	case errors.Is(err, fs.ErrPermission):
		return SkipDenied
	default:
		return NotSkipped
	}
}

func firstNonEmpty(values []string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Collector takes process snapshots
type Collector struct {
	lister Lister
	logger *zap.SugaredLogger
}

func New(lister Lister, logger *zap.SugaredLogger) *Collector {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Collector{lister: lister, logger: logger}
}

// Collect returns a normalized record for every process that could be read.
// Processes that vanish, deny access or are zombies are skipped. Only a
// failure to enumerate the process table is returned as an error.
func (c *Collector) Collect(ctx context.Context) ([]models.ProcessRecord, error) {
	handles, err := c.lister.Processes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	records := make([]models.ProcessRecord, 0, len(handles))
	skipped := 0

	for _, h := range handles {
		res := ReadProcess(ctx, h)
		if res.Skipped() {
			skipped++
			c.logger.Debugw("Skipping process", "pid", res.Raw.PID, "reason", string(res.Skip), "error", res.Err)
			continue
		}
		records = append(records, Normalize(res.Raw))
	}

	c.logger.Infow("Process snapshot taken", "collected", len(records), "skipped", skipped)
	return records, nil
}
