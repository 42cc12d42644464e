package collector

import (
	"context"

	"github.com/shirou/gopsutil/v3/process"
)

// SystemLister enumerates the live OS process table through gopsutil
type SystemLister struct{}

func (SystemLister) Processes(ctx context.Context) ([]Handle, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	handles := make([]Handle, 0, len(procs))
	for _, p := range procs {
		handles = append(handles, systemProcess{p})
	}
	return handles, nil
}

type systemProcess struct {
	p *process.Process
}

func (s systemProcess) PID() int32 { return s.p.Pid }

func (s systemProcess) Name(ctx context.Context) (string, error) {
	return s.p.NameWithContext(ctx)
}

func (s systemProcess) Username(ctx context.Context) (string, error) {
	return s.p.UsernameWithContext(ctx)
}

func (s systemProcess) CreateTime(ctx context.Context) (int64, error) {
	return s.p.CreateTimeWithContext(ctx)
}

func (s systemProcess) Status(ctx context.Context) ([]string, error) {
	return s.p.StatusWithContext(ctx)
}

func (s systemProcess) NumThreads(ctx context.Context) (int32, error) {
	return s.p.NumThreadsWithContext(ctx)
}
