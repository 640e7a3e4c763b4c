package renderer

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// HostInfo describes the machine the renderer runs on
type HostInfo struct {
	CPUModel      string
	LogicalCores  int
	PhysicalCores int
	ClockGHz      float64
	TotalMemoryGB uint64
}

// ProbeHost queries CPU and memory information
func ProbeHost() (HostInfo, error) {
	cpuInfo, err := cpu.Info()
	if err != nil {
		return HostInfo{}, fmt.Errorf("reading cpu info: %w", err)
	}
	if len(cpuInfo) == 0 {
		return HostInfo{}, fmt.Errorf("no CPU information available")
	}

	logical, err := cpu.Counts(true)
	if err != nil {
		return HostInfo{}, fmt.Errorf("counting logical cores: %w", err)
	}
	physical, err := cpu.Counts(false)
	if err != nil {
		return HostInfo{}, fmt.Errorf("counting physical cores: %w", err)
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		return HostInfo{}, fmt.Errorf("reading memory info: %w", err)
	}

	return HostInfo{
		CPUModel:      cpuInfo[0].ModelName,
		LogicalCores:  logical,
		PhysicalCores: physical,
		ClockGHz:      cpuInfo[0].Mhz / 1000,
		TotalMemoryGB: memInfo.Total / (1024 * 1024 * 1024),
	}, nil
}

// String formats the host for a startup banner
func (h HostInfo) String() string {
	return fmt.Sprintf("%s (%d logical / %d physical cores, %.2f GHz, %d GB RAM)",
		h.CPUModel, h.LogicalCores, h.PhysicalCores, h.ClockGHz, h.TotalMemoryGB)
}

// DefaultWorkerCount returns the logical CPU count, falling back to the Go runtime's view
func DefaultWorkerCount() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}
