package rental

import (
	"fmt"
	"strconv"
)

// Kind identifies a vehicle variant.
type Kind string

const (
	KindCar         Kind = "car"
	KindTruck       Kind = "truck"
	KindElectricCar Kind = "electric_car"
)

const (
	// LoadRatePerKg is added to a truck's rental cost for every kilogram carried.
	LoadRatePerKg = 0.05
	// LowBatteryRatio is the fraction of capacity below which an EV is low.
	LowBatteryRatio = 0.2
	// LowBatterySurcharge is charged when an EV leaves with a low battery.
	LowBatterySurcharge = 20000.0
)

// Vehicle is the capability set shared by every fleet vehicle.
// The interface is sealed: only Car, Truck and ElectricCar implement it.
type Vehicle interface {
	ID() string
	Model() string
	DailyRate() float64
	Rented() bool
	Kind() Kind
	RentCost(days int) float64
	Start() error
	Clone() Vehicle
	Info() string

	setRented(rented bool)
}

// LoadCarrier is implemented by vehicles whose cost depends on cargo.
type LoadCarrier interface {
	Vehicle
	MaxLoad() float64
	RentCostWithLoad(days int, load float64) float64
}

// BatteryPowered is implemented by vehicles that can be charged.
type BatteryPowered interface {
	Vehicle
	Capacity() float64
	Charge() float64
	ChargeBy(kwh float64) float64
}

type base struct {
	id        string
	model     string
	dailyRate float64
	rented    bool
}

func (b *base) ID() string            { return b.id }
func (b *base) Model() string         { return b.model }
func (b *base) DailyRate() float64    { return b.dailyRate }
func (b *base) Rented() bool          { return b.rented }
func (b *base) setRented(rented bool) { b.rented = rented }

// Start is a no-op for vehicles without a start check.
func (b *base) Start() error { return nil }

func (b *base) info() string {
	return fmt.Sprintf("%s - %s rate: %s", b.id, b.model, formatNumber(b.dailyRate))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Car is a passenger vehicle.
type Car struct {
	base
	capacity int
}

// NewCar creates a car carrying up to capacity passengers.
func NewCar(id, model string, dailyRate float64, capacity int) *Car {
	return &Car{base: base{id: id, model: model, dailyRate: dailyRate}, capacity: capacity}
}

func (c *Car) Kind() Kind             { return KindCar }
func (c *Car) PassengerCapacity() int { return c.capacity }

func (c *Car) RentCost(days int) float64 {
	return c.dailyRate * float64(days)
}

func (c *Car) Clone() Vehicle {
	clone := *c
	return &clone
}

func (c *Car) Info() string {
	return fmt.Sprintf("%s cap: %d", c.info(), c.capacity)
}

// Truck is a cargo vehicle with a maximum load in kilograms.
type Truck struct {
	base
	maxLoad float64
}

// NewTruck creates a truck rated for maxLoad kilograms.
func NewTruck(id, model string, dailyRate, maxLoad float64) *Truck {
	return &Truck{base: base{id: id, model: model, dailyRate: dailyRate}, maxLoad: maxLoad}
}

func (t *Truck) Kind() Kind       { return KindTruck }
func (t *Truck) MaxLoad() float64 { return t.maxLoad }

func (t *Truck) RentCost(days int) float64 {
	return t.dailyRate * float64(days)
}

// RentCostWithLoad adds the per-kilogram cargo charge to the base cost.
func (t *Truck) RentCostWithLoad(days int, load float64) float64 {
	return t.dailyRate*float64(days) + load*LoadRatePerKg
}

func (t *Truck) Clone() Vehicle {
	clone := *t
	return &clone
}

func (t *Truck) Info() string {
	return fmt.Sprintf("%s maxLoad: %s", t.info(), formatNumber(t.maxLoad))
}

// ElectricCar is a battery powered car. Capacity and charge are in kWh.
type ElectricCar struct {
	base
	capacity float64
	charge   float64
}

// NewElectricCar creates an electric car. The initial charge is clamped to capacity.
func NewElectricCar(id, model string, dailyRate, capacity, charge float64) *ElectricCar {
	return &ElectricCar{
		base:     base{id: id, model: model, dailyRate: dailyRate},
		capacity: capacity,
		charge:   min(capacity, charge),
	}
}

func (e *ElectricCar) Kind() Kind        { return KindElectricCar }
func (e *ElectricCar) Capacity() float64 { return e.capacity }
func (e *ElectricCar) Charge() float64   { return e.charge }

func (e *ElectricCar) batteryLow() bool {
	return e.charge < e.capacity*LowBatteryRatio
}

func (e *ElectricCar) RentCost(days int) float64 {
	cost := e.dailyRate * float64(days)
	if e.batteryLow() {
		cost += LowBatterySurcharge
	}
	return cost
}

// Start refuses to start the car while the battery is low.
func (e *ElectricCar) Start() error {
	if e.batteryLow() {
		return vehicleErr(ErrBatteryLow, e.id)
	}
	return nil
}

// ChargeBy adds kwh to the battery, never exceeding capacity, and returns the new charge.
func (e *ElectricCar) ChargeBy(kwh float64) float64 {
	e.charge = min(e.capacity, e.charge+kwh)
	return e.charge
}

func (e *ElectricCar) Clone() Vehicle {
	clone := *e
	return &clone
}

func (e *ElectricCar) Info() string {
	return fmt.Sprintf("%s charge: %s/%s", e.info(), formatNumber(e.charge), formatNumber(e.capacity))
}
