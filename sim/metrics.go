// Tracks run-wide production metrics for final reporting.

package sim

import "fmt"

// Metrics aggregates production statistics across one simulated week,
// for evaluating staffing and dispatch policy and debugging behavior
// over time.
type Metrics struct {
	Produced int `json:"produced" yaml:"produced"` // units through the final assembly quality gate
	Shipped  int `json:"shipped" yaml:"shipped"`   // units picked up by the store
	Scrapped int `json:"scrapped" yaml:"scrapped"` // units lost at body, neck or assembly gates
	Reworked int `json:"reworked" yaml:"reworked"` // painting retries queued
	Absences int `json:"absences" yaml:"absences"` // worker sick-days across all pools
}

// Print displays aggregated metrics at the end of the week.
func (m *Metrics) Print() {
	fmt.Println("=== Week Metrics ===")
	fmt.Printf("Guitars Produced : %d\n", m.Produced)
	fmt.Printf("Guitars Shipped  : %d\n", m.Shipped)
	fmt.Printf("Units Scrapped   : %d\n", m.Scrapped)
	fmt.Printf("Painting Reworks : %d\n", m.Reworked)
	fmt.Printf("Worker Sick-days : %d\n", m.Absences)
}
