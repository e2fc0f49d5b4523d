package health

import (
	"context"
	"errors"
	"time"

	"dairy-backend/internal/store"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

type HealthChecker struct {
	storage store.Storage
}

type HealthStatus struct {
	Status  string        `json:"status"`
	Storage StorageHealth `json:"storage"`
	Host    HostStats     `json:"host"`
}

type StorageHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

type HostStats struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	DiskPercent   float64 `json:"disk_percent"`
}

func NewHealthChecker(storage store.Storage) *HealthChecker {
	return &HealthChecker{storage: storage}
}

func (h *HealthChecker) CheckBasic() HealthStatus {
	storageHealth := h.checkStorage()

	status := "healthy"
	if storageHealth.Status != "healthy" {
		status = "unhealthy"
	}

	return HealthStatus{
		Status:  status,
		Storage: storageHealth,
		Host:    CollectHostStats(),
	}
}

// checkStorage probes the backend by loading the blob. An empty store
// is healthy; the seed document covers that case at startup.
func (h *HealthChecker) checkStorage() StorageHealth {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	_, err := h.storage.Load(ctx)
	responseTime := time.Since(start).Milliseconds()

	if err != nil && !errors.Is(err, store.ErrNoDocument) {
		return StorageHealth{Status: "unhealthy", ResponseTime: responseTime}
	}
	return StorageHealth{Status: "healthy", ResponseTime: responseTime}
}

// CollectHostStats samples CPU, memory and disk usage of the host.
func CollectHostStats() HostStats {
	var stats HostStats
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		stats.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemoryPercent = vm.UsedPercent
	}
	if du, err := disk.Usage("/"); err == nil {
		stats.DiskPercent = du.UsedPercent
	}
	return stats
}
