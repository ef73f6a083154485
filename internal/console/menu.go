package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/fleet-rental/internal/models"
	"github.com/ukydev/fleet-rental/internal/rental"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnknownVehicleType = errors.New("unknown vehicle type")
)

const menuText = `===== VEHICLE RENTAL MENU =====
1. Add vehicle
2. List vehicles
3. Rent vehicle
4. Return vehicle
5. Charge EV battery
0. Exit
Choose menu: `

// Recorder receives an event for every successful rent, return or charge.
type Recorder interface {
	Record(ctx context.Context, event models.RentalEvent) error
}

// Menu is the interactive text front end of a rental.Manager.
type Menu struct {
	manager   *rental.Manager
	in        *bufio.Scanner
	out       io.Writer
	log       log.FieldLogger
	recorders []Recorder
}

// New creates a menu reading whitespace separated tokens from in.
func New(manager *rental.Manager, in io.Reader, out io.Writer, logger log.FieldLogger, recorders ...Recorder) *Menu {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Menu{
		manager:   manager,
		in:        scanner,
		out:       out,
		log:       logger,
		recorders: recorders,
	}
}

// Run shows the menu until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(m.out, menuText)

		choice, err := m.readInt()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(m.out, "Error: %v\n", err)
			continue
		}
		if choice == 0 {
			return nil
		}

		err = m.dispatch(ctx, choice)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case 1:
		return m.addVehicle()
	case 2:
		m.listVehicles()
		return nil
	case 3:
		return m.rent(ctx)
	case 4:
		return m.returnVehicle(ctx)
	case 5:
		return m.charge(ctx)
	default:
		fmt.Fprintln(m.out, "Unknown menu option")
		return nil
	}
}

func (m *Menu) addVehicle() error {
	kind, err := m.promptInt("1. Car\n2. Truck\n3. ElectricCar\nChoose vehicle type: ")
	if err != nil {
		return err
	}
	if kind < 1 || kind > 3 {
		return fmt.Errorf("%w: %d", ErrUnknownVehicleType, kind)
	}
	id, err := m.prompt("Enter ID: ")
	if err != nil {
		return err
	}
	model, err := m.prompt("Enter model: ")
	if err != nil {
		return err
	}
	rate, err := m.promptFloat("Daily rate: ")
	if err != nil {
		return err
	}

	var v rental.Vehicle
	switch kind {
	case 1:
		capacity, err := m.promptInt("Passenger capacity: ")
		if err != nil {
			return err
		}
		v = rental.NewCar(id, model, rate, capacity)
	case 2:
		maxLoad, err := m.promptFloat("Max load (kg): ")
		if err != nil {
			return err
		}
		v = rental.NewTruck(id, model, rate, maxLoad)
	case 3:
		capacity, err := m.promptFloat("Battery capacity (kWh): ")
		if err != nil {
			return err
		}
		charge, err := m.promptFloat("Current charge (kWh): ")
		if err != nil {
			return err
		}
		v = rental.NewElectricCar(id, model, rate, capacity, charge)
	}

	m.manager.AddVehicle(v)
	fmt.Fprintln(m.out, "Vehicle added!")
	return nil
}

func (m *Menu) listVehicles() {
	for _, line := range m.manager.List() {
		fmt.Fprintln(m.out, line)
	}
}

func (m *Menu) rent(ctx context.Context) error {
	id, err := m.prompt("Vehicle ID: ")
	if err != nil {
		return err
	}
	days, err := m.promptInt("Rental length (days): ")
	if err != nil {
		return err
	}
	load, err := m.promptFloat("Load (Truck), or -1 if not a Truck: ")
	if err != nil {
		return err
	}

	cost, err := m.manager.Rent(id, days, load)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Rental cost: %s\n", formatAmount(cost))

	event := models.RentalEvent{VehicleID: id, Action: models.ActionRent, Days: days, Amount: cost}
	if load >= 0 {
		event.Load = load
	}
	m.record(ctx, event)
	return nil
}

func (m *Menu) returnVehicle(ctx context.Context) error {
	id, err := m.prompt("Vehicle ID: ")
	if err != nil {
		return err
	}
	days, err := m.promptInt("Actual days: ")
	if err != nil {
		return err
	}
	damaged, err := m.promptInt("Damaged? (1. yes, 0. no): ")
	if err != nil {
		return err
	}

	penalty, err := m.manager.Return(id, days, damaged != 0)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Total penalty: %s\n", formatAmount(penalty))

	m.record(ctx, models.RentalEvent{
		VehicleID: id,
		Action:    models.ActionReturn,
		Days:      days,
		Damaged:   damaged != 0,
		Amount:    penalty,
	})
	return nil
}

func (m *Menu) charge(ctx context.Context) error {
	id, err := m.prompt("Vehicle ID: ")
	if err != nil {
		return err
	}
	kwh, err := m.promptFloat("kWh to charge: ")
	if err != nil {
		return err
	}

	charge, err := m.manager.Charge(id, kwh)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Battery charged! Now at %s kWh\n", formatAmount(charge))

	m.record(ctx, models.RentalEvent{VehicleID: id, Action: models.ActionCharge, Amount: charge})
	return nil
}

// record forwards event to every recorder. Failures are logged, never returned.
func (m *Menu) record(ctx context.Context, event models.RentalEvent) {
	if len(m.recorders) == 0 {
		return
	}
	if v, ok := m.manager.Find(event.VehicleID); ok {
		event.Kind = string(v.Kind())
	}
	event.CreatedAt = time.Now()

	for _, r := range m.recorders {
		if err := r.Record(ctx, event); err != nil {
			m.log.WithError(err).WithFields(log.Fields{
				"vehicle_id": event.VehicleID,
				"action":     event.Action,
			}).Warn("Failed to record rental event")
		}
	}
}

func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	return m.next()
}

func (m *Menu) promptInt(label string) (int, error) {
	fmt.Fprint(m.out, label)
	return m.readInt()
}

func (m *Menu) promptFloat(label string) (float64, error) {
	fmt.Fprint(m.out, label)
	tok, err := m.next()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, tok)
	}
	return f, nil
}

func (m *Menu) readInt() (int, error) {
	tok, err := m.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, tok)
	}
	return n, nil
}

func (m *Menu) next() (string, error) {
	if m.in.Scan() {
		return m.in.Text(), nil
	}
	if err := m.in.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
