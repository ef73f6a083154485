package rental

import (
	"github.com/sirupsen/logrus"
)

const (
	// NoLoad tells Rent that no cargo load was given.
	NoLoad = -1.0

	// ReservedDays is the rental length every return is measured against.
	ReservedDays = 3
	// LatePenaltyRatio is the share of one day's cost charged per late day.
	LatePenaltyRatio = 0.5
	// DamageMultiplier is the number of day costs charged for damage.
	DamageMultiplier = 5.0
	// SevereDamageLimit is the damage cost above which a return is rejected.
	SevereDamageLimit = 100000.0
)

// Manager owns the fleet and runs rent, return and charge operations on it.
// It is not safe for concurrent use.
type Manager struct {
	fleet []Vehicle
	log   logrus.FieldLogger
}

// NewManager creates a manager with an empty fleet that reports events to log.
func NewManager(log logrus.FieldLogger) *Manager {
	return &Manager{log: log}
}

// AddVehicle stores a copy of prototype in the fleet.
// Identifiers are not checked for uniqueness; lookups always return the first match.
func (m *Manager) AddVehicle(prototype Vehicle) {
	m.fleet = append(m.fleet, prototype.Clone())
}

// Find returns the first vehicle whose identifier equals id.
func (m *Manager) Find(id string) (Vehicle, bool) {
	for _, v := range m.fleet {
		if v.ID() == id {
			return v, true
		}
	}
	return nil, false
}

// Vehicles returns the fleet in insertion order.
func (m *Manager) Vehicles() []Vehicle {
	out := make([]Vehicle, len(m.fleet))
	copy(out, m.fleet)
	return out
}

// List returns the display line of every vehicle in insertion order.
func (m *Manager) List() []string {
	lines := make([]string, 0, len(m.fleet))
	for _, v := range m.fleet {
		lines = append(lines, v.Info())
	}
	return lines
}

// Rent marks the vehicle as rented for days and returns the rental cost.
// A load of NoLoad (or any negative value) skips the truck load check.
func (m *Manager) Rent(id string, days int, load float64) (float64, error) {
	v, ok := m.Find(id)
	if !ok {
		return 0, vehicleErr(ErrNotFound, id)
	}
	if v.Rented() {
		return 0, vehicleErr(ErrVehicleNotAvailable, id)
	}

	var cost float64
	switch vv := v.(type) {
	case LoadCarrier:
		if load >= 0 && load > vv.MaxLoad() {
			m.log.Errorf("Overload: %s", id)
			return 0, vehicleErr(ErrOverload, id)
		}
		if load >= 0 {
			cost = vv.RentCostWithLoad(days, load)
		} else {
			cost = vv.RentCost(days)
		}
	case BatteryPowered:
		if err := vv.Start(); err != nil {
			return 0, err
		}
		cost = vv.RentCost(days)
	default:
		cost = v.RentCost(days)
	}

	v.setRented(true)
	m.log.Infof("Rent success: %s", id)
	return cost, nil
}

// Return ends a rental after actualDays and returns the penalty owed.
// Damage whose cost exceeds SevereDamageLimit rejects the return and the
// vehicle stays rented.
func (m *Manager) Return(id string, actualDays int, damaged bool) (float64, error) {
	v, ok := m.Find(id)
	if !ok {
		return 0, vehicleErr(ErrNotFound, id)
	}
	if !v.Rented() {
		return 0, vehicleErr(ErrNotRented, id)
	}

	dayCost := v.RentCost(1)
	lateDays := max(0, actualDays-ReservedDays)
	penalty := float64(lateDays) * dayCost * LatePenaltyRatio

	if damaged {
		damage := dayCost * DamageMultiplier
		if damage > SevereDamageLimit {
			m.log.Errorf("Severe damage: %s", id)
			return 0, vehicleErr(ErrSevereDamage, id)
		}
		penalty += damage
	}

	v.setRented(false)
	m.log.Infof("Return success: %s", id)
	return penalty, nil
}

// Charge adds kwh to an electric car's battery and returns the new charge.
func (m *Manager) Charge(id string, kwh float64) (float64, error) {
	v, ok := m.Find(id)
	if !ok {
		return 0, vehicleErr(ErrNotFound, id)
	}
	ev, ok := v.(BatteryPowered)
	if !ok {
		return 0, vehicleErr(ErrNotElectric, id)
	}
	charge := ev.ChargeBy(kwh)
	m.log.Infof("Charge success: %s", id)
	return charge, nil
}
