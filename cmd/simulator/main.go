package main

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/fleet-rental/internal/config"
	"github.com/ukydev/fleet-rental/internal/logger"
	"github.com/ukydev/fleet-rental/internal/rental"
)

var models = map[rental.Kind][]string{
	rental.KindCar:         {"Avanza", "Xenia", "Brio", "Civic", "Innova"},
	rental.KindTruck:       {"Canter", "Dutro", "Elf", "Actros"},
	rental.KindElectricCar: {"Ioniq", "Leaf", "Model 3", "Air ev"},
}

var kinds = []rental.Kind{rental.KindCar, rental.KindTruck, rental.KindElectricCar}

// outcomes maps failure sentinels to the counter they are reported under.
var outcomes = []struct {
	err  error
	name string
}{
	{rental.ErrNotFound, "not_found"},
	{rental.ErrVehicleNotAvailable, "not_available"},
	{rental.ErrBatteryLow, "battery_low"},
	{rental.ErrOverload, "overload"},
	{rental.ErrSevereDamage, "severe_damage"},
	{rental.ErrNotRented, "not_rented"},
	{rental.ErrNotElectric, "not_electric"},
}

func randomVehicle(rng *rand.Rand, n int) rental.Vehicle {
	kind := kinds[rng.Intn(len(kinds))]
	model := models[kind][rng.Intn(len(models[kind]))]
	rate := float64(5+rng.Intn(50)) * 10000

	switch kind {
	case rental.KindTruck:
		return rental.NewTruck(fmt.Sprintf("T%d", n), model, rate, float64(500+rng.Intn(20)*100))
	case rental.KindElectricCar:
		capacity := float64(40 + rng.Intn(60))
		return rental.NewElectricCar(fmt.Sprintf("E%d", n), model, rate, capacity, rng.Float64()*capacity)
	default:
		return rental.NewCar(fmt.Sprintf("C%d", n), model, rate, 2+rng.Intn(6))
	}
}

// classify returns the counter name for err.
func classify(err error) string {
	for _, o := range outcomes {
		if errors.Is(err, o.err) {
			return o.name
		}
	}
	return "other"
}

// step performs one random operation on a random vehicle of the fleet.
func step(rng *rand.Rand, m *rental.Manager, fleet []rental.Vehicle) (string, error) {
	v := fleet[rng.Intn(len(fleet))]
	switch rng.Intn(3) {
	case 0:
		load := rental.NoLoad
		if v.Kind() == rental.KindTruck {
			load = float64(rng.Intn(2500))
		}
		cost, err := m.Rent(v.ID(), 1+rng.Intn(7), load)
		if err == nil {
			log.WithFields(log.Fields{"vehicle_id": v.ID(), "cost": cost}).Info("Rented vehicle")
		}
		return "rent", err
	case 1:
		penalty, err := m.Return(v.ID(), 1+rng.Intn(7), rng.Intn(4) == 0)
		if err == nil {
			log.WithFields(log.Fields{"vehicle_id": v.ID(), "penalty": penalty}).Info("Returned vehicle")
		}
		return "return", err
	default:
		charge, err := m.Charge(v.ID(), float64(rng.Intn(30)))
		if err == nil {
			log.WithFields(log.Fields{"vehicle_id": v.ID(), "charge": charge}).Info("Charged vehicle")
		}
		return "charge", err
	}
}

// simulate seeds a fleet of size vehicles and runs steps random operations.
// It returns the number of failures per outcome.
func simulate(rng *rand.Rand, m *rental.Manager, size, steps int) map[string]int {
	for i := 0; i < size; i++ {
		m.AddVehicle(randomVehicle(rng, i+1))
	}
	fleet := m.Vehicles()
	failures := make(map[string]int)
	if len(fleet) == 0 {
		return failures
	}

	for i := 0; i < steps; i++ {
		op, err := step(rng, m, fleet)
		if err != nil {
			name := classify(err)
			failures[name]++
			log.WithError(err).WithFields(log.Fields{"op": op, "outcome": name}).Debug("Operation rejected")
		}
	}
	return failures
}

func main() {
	cfg := config.Load()
	log.SetLevel(logger.ParseLevel(cfg.LogLevel))

	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	log.WithFields(log.Fields{
		"fleet_size": cfg.Sim.FleetSize,
		"steps":      cfg.Sim.Steps,
		"seed":       seed,
	}).Info("Starting rental simulation")

	manager := rental.NewManager(log.WithField("component", "rental"))
	failures := simulate(rng, manager, cfg.Sim.FleetSize, cfg.Sim.Steps)

	for _, line := range manager.List() {
		log.Info(line)
	}
	fields := log.Fields{}
	for name, n := range failures {
		fields[name] = n
	}
	log.WithFields(fields).Info("Simulation completed")
}
