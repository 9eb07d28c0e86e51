package cli

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/process"
)

// Sources supplies the host values behind the cpus and pids commands.
type Sources struct {
	// CPUs returns the number of logical CPUs.
	CPUs func(ctx context.Context) (int, error)
	// PIDs returns the ids of the running processes.
	PIDs func(ctx context.Context) ([]int32, error)
}

// HostSources reads the local host through gopsutil.
func HostSources() Sources {
	return Sources{
		CPUs: func(ctx context.Context) (int, error) {
			return cpu.CountsWithContext(ctx, true)
		},
		PIDs: process.PidsWithContext,
	}
}

// CPUIndices returns the logical CPU indices 0..n-1.
func (s Sources) CPUIndices(ctx context.Context) ([]int64, error) {
	n, err := s.CPUs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "count logical cpus")
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(i)
	}
	return out, nil
}

// ProcessIDs returns the running process ids.
func (s Sources) ProcessIDs(ctx context.Context) ([]int64, error) {
	pids, err := s.PIDs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list processes")
	}
	out := make([]int64, len(pids))
	for i, pid := range pids {
		out[i] = int64(pid)
	}
	return out, nil
}
