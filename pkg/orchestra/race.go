package orchestra

import (
	"context"
	"io"
	"strings"

	"github.com/srevinsaju/menagerie/pkg/vehicle"
)

// raceDemo lines up a mixed collection and drives it purely through the
// Vehicle contract.
type raceDemo struct{}

func (raceDemo) Name() string {
	return "race"
}

func (raceDemo) Title() string {
	return "Polymorphism in Action"
}

func (d raceDemo) Run(ctx context.Context, w io.Writer) error {
	p := &printer{w: w}
	header(p, d.Title())

	transportation := vehicle.Vehicles{
		vehicle.NewCar("Sports Car", 180),
		vehicle.NewPlane("Fighter Jet", 1200),
		vehicle.NewBicycle("Racing Bike", 25),
	}

	demoLogger(ctx, d.Name()).Debugf("lineup: %s", strings.Join(transportation.Names(), ", "))

	p.println("Starting a race with different vehicles:")
	for i, v := range transportation {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.printf("%d. %s\n", i+1, v.Move())
	}

	p.println()
	p.println("All vehicles stopping:")
	for _, v := range transportation {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.printf("   %s\n", v.Stop())
	}
	p.println()
	return p.err
}
