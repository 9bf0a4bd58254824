// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

// VehicleEvent is published whenever a vehicle is created, updated or
// deleted. It carries enough context for downstream consumers to build an
// audit trail without querying the primary database.
type VehicleEvent struct {
	Action     string `json:"action"` // created | updated | deleted
	VehicleID  uint64 `json:"vehicle_id"`
	Name       string `json:"name"`
	Brand      string `json:"brand"`
	Year       int    `json:"year"`
	Actor      string `json:"actor"` // email of the admin who performed the change
	OccurredAt string `json:"occurred_at"`
}
