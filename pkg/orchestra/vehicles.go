package orchestra

import (
	"context"
	"io"

	"github.com/srevinsaju/menagerie/pkg/vehicle"
)

type vehicleDemo struct{}

func (vehicleDemo) Name() string {
	return "vehicles"
}

func (vehicleDemo) Title() string {
	return "Vehicle Polymorphism Demo"
}

func (d vehicleDemo) Run(ctx context.Context, w io.Writer) error {
	logger := demoLogger(ctx, d.Name())
	p := &printer{w: w}
	header(p, d.Title())

	vehicles := vehicle.Vehicles{
		vehicle.NewCar("Tesla Model 3", 120, vehicle.WithFuelType("electric")),
		vehicle.NewPlane("Boeing 747", 550, vehicle.WithAltitude(35000)),
		vehicle.NewBoat("Ocean Explorer", 25, vehicle.WithBoatType("yacht")),
		vehicle.NewBicycle("Mountain Bike", 15, vehicle.WithGearCount(18)),
	}

	for _, v := range vehicles {
		if err := ctx.Err(); err != nil {
			return err
		}
		logger.Tracef("showing %T %s", v, v.Name())
		section(p, v.Name())
		p.println(v.Move())
		p.println(v.Stop())

		switch special := v.(type) {
		case vehicle.Honker:
			p.println(special.Honk())
		case vehicle.TakeoffCapable:
			p.println(special.Takeoff())
		case vehicle.Anchorer:
			p.println(special.Anchor())
		case vehicle.BellRinger:
			p.println(special.RingBell())
		}
		p.println()
	}
	return p.err
}
