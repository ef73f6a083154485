package rental

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound            = errors.New("vehicle not found")
	ErrVehicleNotAvailable = errors.New("vehicle not available")
	ErrBatteryLow          = errors.New("battery low on EV")
	ErrOverload            = errors.New("overload truck")
	ErrInvalidReturn       = errors.New("invalid return")
	ErrNotElectric         = errors.New("vehicle is not an electric car")

	// ErrNotRented and ErrSevereDamage both match ErrInvalidReturn with errors.Is.
	ErrNotRented    = fmt.Errorf("%w: vehicle not rented", ErrInvalidReturn)
	ErrSevereDamage = fmt.Errorf("%w: severe damage", ErrInvalidReturn)
)

func vehicleErr(err error, id string) error {
	return fmt.Errorf("%w: %s", err, id)
}
