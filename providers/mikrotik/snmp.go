package mikrotik

import (
	"fmt"
	"time"

	"github.com/gosnmp/gosnmp"
)

type HealthConfig struct {
	Host           string
	Port           uint16
	Community      string
	TimeoutSeconds int
	Retries        int
}

type Health struct {
	CPUUsage    float64 `json:"cpu_usage"`
	MemoryUsage float64 `json:"memory_usage"`
}

// HOST-RESOURCES-MIB, as served by RouterOS. Storage index 65536 is main memory.
const (
	cpuLoadOID      = ".1.3.6.1.2.1.25.3.3.1.2.1"
	memTotalOID     = ".1.3.6.1.2.1.25.2.3.1.5.65536"
	memUsedOID      = ".1.3.6.1.2.1.25.2.3.1.6.65536"
	defaultSNMPPort = 161
)

// ProbeHealth asks the router for CPU load and memory usage over SNMP v2c.
// An error means the device is unreachable.
func ProbeHealth(cfg HealthConfig) (Health, error) {
	g, err := prepareConnection(cfg)
	if err != nil {
		return Health{}, fmt.Errorf("SNMP connection failed: %v", err)
	}
	defer g.Conn.Close()

	result, err := g.Get([]string{cpuLoadOID, memTotalOID, memUsedOID})
	if err != nil {
		return Health{}, fmt.Errorf("SNMP get failed: %v", err)
	}

	var cpuUsage, totalMem, usedMem float64
	for _, variable := range result.Variables {
		switch variable.Name {
		case cpuLoadOID:
			cpuUsage = toFloat(variable.Value)
		case memTotalOID:
			totalMem = toFloat(variable.Value)
		case memUsedOID:
			usedMem = toFloat(variable.Value)
		}
	}

	health := Health{CPUUsage: cpuUsage}
	if totalMem > 0 {
		health.MemoryUsage = (usedMem / totalMem) * 100
	}
	return health, nil
}

func prepareConnection(cfg HealthConfig) (*gosnmp.GoSNMP, error) {
	port := cfg.Port
	if port == 0 {
		port = defaultSNMPPort
	}
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 5
	}
	community := cfg.Community
	if community == "" {
		community = "public"
	}

	g := &gosnmp.GoSNMP{
		Target:    cfg.Host,
		Port:      port,
		Community: community,
		Version:   gosnmp.Version2c,
		Timeout:   time.Duration(timeout) * time.Second,
		Retries:   cfg.Retries,
	}
	if err := g.Connect(); err != nil {
		return nil, err
	}
	return g, nil
}

func toFloat(value interface{}) float64 {
	switch v := value.(type) {
	case int:
		return float64(v)
	case uint:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	}
	return 0
}
