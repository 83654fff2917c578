package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a complete simulation input, loadable from a YAML file:
//
//	buffer_capacity: 5
//	server_capacity: 2
//	service_duration: 10
//	arrivals: [0, 1, 2, 3]
//
// Arrival times need not be sorted; the message queue orders them.
type Scenario struct {
	BufferCapacity  uint64 `yaml:"buffer_capacity"`
	ServerCapacity  uint64 `yaml:"server_capacity"`
	ServiceDuration Tick   `yaml:"service_duration"`
	Arrivals        []Tick `yaml:"arrivals"`
}

// LoadScenario reads and parses a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate rejects parameter combinations the engine should not be asked to
// run. The engine itself only needs a nonnegative duration, but a zero
// duration makes every Exit share its trigger's instant, so the loader
// requires at least 1.
func (sc *Scenario) Validate() error {
	if sc.ServiceDuration == 0 {
		return fmt.Errorf("service_duration must be at least 1")
	}
	return nil
}

// NewSimulator builds a Simulator from the scenario parameters and seeds its
// arrivals.
func (sc *Scenario) NewSimulator() *Simulator {
	s := NewSimulator(sc.BufferCapacity, sc.ServerCapacity, sc.ServiceDuration)
	s.SeedArrivals(sc.Arrivals...)
	return s
}
