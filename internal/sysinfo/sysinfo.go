// Package sysinfo collects the host context a measurement ran under: core
// count, CPU model, memory, and process start time. Everything is best
// effort; fields the platform cannot answer stay zero.
package sysinfo

import (
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// Info describes the machine and process a measurement ran on
type Info struct {
	Hostname     string    `json:"hostname" yaml:"hostname"`
	OS           string    `json:"os" yaml:"os"`
	Platform     string    `json:"platform,omitempty" yaml:"platform,omitempty"`
	LogicalCores int       `json:"logical_cores" yaml:"logical_cores"`
	CPUModel     string    `json:"cpu_model,omitempty" yaml:"cpu_model,omitempty"`
	MemoryTotal  uint64    `json:"memory_total_bytes,omitempty" yaml:"memory_total_bytes,omitempty"`
	ProcessStart time.Time `json:"process_start,omitempty" yaml:"process_start,omitempty"`
}

// Collect gathers host information. Individual probes that fail leave their
// fields at zero values rather than failing the whole collection.
func Collect() *Info {
	info := &Info{
		OS:           runtime.GOOS,
		LogicalCores: runtime.NumCPU(),
	}

	if count, err := cpu.Counts(true); err == nil && count > 0 {
		info.LogicalCores = count
	}
	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 {
		info.CPUModel = cpus[0].ModelName
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.MemoryTotal = vm.Total
	}
	if h, err := host.Info(); err == nil {
		info.Hostname = h.Hostname
		info.Platform = h.Platform
	}
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if createMs, err := p.CreateTime(); err == nil {
			info.ProcessStart = time.UnixMilli(createMs)
		}
	}

	return info
}

// CPUBound returns the maximum CPU time the process could have consumed over
// the given wall span with every logical core busy. Used as a sanity bound on
// composite measurements, not a hard invariant.
func (i *Info) CPUBound(real time.Duration) time.Duration {
	cores := i.LogicalCores
	if cores < 1 {
		cores = 1
	}
	return real * time.Duration(cores)
}
