package services

import (
	"errors"
	"sort"

	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/delivery"
	"github.com/Gumierow/GIS-ISI/internal/core/domain/model/vehicle"
)

// ErrNoVehicleAvailable is returned when no suitable vehicle is available for delivery
// assignment. This occurs when either no vehicles are provided or none of the provided
// vehicles is currently free to take a delivery.
var ErrNoVehicleAvailable = errors.New("no vehicle available")

// FleetDispatcher is a domain service responsible for selecting the optimal vehicle
// for a delivery based on cargo capacity.
//
// Key responsibilities:
//   - Validating deliveries and vehicles before assignment
//   - Ranking candidate vehicles deterministically
//   - Ensuring atomic delivery assignment workflow
//
// Business rules:
//   - Only available vehicles are considered
//   - Selection prefers the largest cargo capacity
//   - Capacity ties are broken by vehicle ID, so the outcome is deterministic
//     for any input order
//   - Assigning flips the chosen vehicle to unavailable
//
// Example usage:
//
//	dispatcher := NewFleetDispatcher()
//	vehicles := []*vehicle.Vehicle{v1, v2, v3}
//
//	assigned, err := dispatcher.Dispatch(pendingDelivery, vehicles)
//	if errors.Is(err, ErrNoVehicleAvailable) {
//	    // Delivery stays pending until the fleet frees up
//	    return
//	}
type FleetDispatcher struct{}

// NewFleetDispatcher creates a new FleetDispatcher instance.
func NewFleetDispatcher() FleetDispatcher {
	return FleetDispatcher{}
}

// Dispatch selects the best vehicle for a given delivery and executes the assignment
// workflow.
//
// Parameters:
//   - d: The delivery to be assigned (must be valid and pending)
//   - vehicles: Slice of fleet vehicles to consider
//
// Returns:
//   - *vehicle.Vehicle: The vehicle assigned to the delivery, now unavailable
//   - error: ErrNoVehicleAvailable if no suitable vehicle exists, or other
//     validation/assignment errors
//
// Selection algorithm:
//   - Validates the delivery and each vehicle
//   - Keeps only available vehicles
//   - Picks the highest-capacity vehicle, breaking ties by vehicle ID
//   - Marks the chosen vehicle unavailable and assigns the delivery atomically
func (f FleetDispatcher) Dispatch(d *delivery.Delivery, vehicles []*vehicle.Vehicle) (*vehicle.Vehicle, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	ranked, err := f.RankVehicles(vehicles)
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, ErrNoVehicleAvailable
	}

	best := ranked[0]
	if err = d.Assign(best.ID()); err != nil {
		return nil, err
	}
	best.MarkUnavailable()

	return best, nil
}

// RankVehicles orders the candidate vehicles by assignment preference.
//
// Parameters:
//   - vehicles: Slice of fleet vehicles to evaluate
//
// Returns:
//   - []*vehicle.Vehicle: Available vehicles sorted by capacity (largest first),
//     with capacity ties broken by vehicle ID
//   - error: Validation error if any vehicle is in an invalid state
//
// The ranking is deterministic: the same set of vehicles always produces the
// same order regardless of how the input slice is arranged. Callers that need
// to try candidates one by one (e.g. under concurrent reservation) can walk
// the returned slice in order.
func (f FleetDispatcher) RankVehicles(vehicles []*vehicle.Vehicle) ([]*vehicle.Vehicle, error) {
	candidates := make([]*vehicle.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if err := v.Validate(); err != nil {
			return nil, err
		}

		if !v.IsAvailable() {
			continue
		}

		candidates = append(candidates, v)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Capacity() != candidates[j].Capacity() {
			return candidates[i].Capacity() > candidates[j].Capacity()
		}
		return candidates[i].ID().Less(candidates[j].ID())
	})

	return candidates, nil
}
