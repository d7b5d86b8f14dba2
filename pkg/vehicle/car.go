package vehicle

import "fmt"

const DefaultFuelType = "gasoline"

type Car struct {
	base
	fuelType string
}

type CarOption func(*Car)

func WithFuelType(fuelType string) CarOption {
	return func(c *Car) {
		c.fuelType = fuelType
	}
}

func NewCar(name string, speed int, opts ...CarOption) *Car {
	c := &Car{
		base:     base{name: name, speed: speed},
		fuelType: DefaultFuelType,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Car) FuelType() string {
	return c.fuelType
}

func (c *Car) Move() string {
	return fmt.Sprintf("%s is driving on the road at %d mph!", c.name, c.speed)
}

func (c *Car) Honk() string {
	return fmt.Sprintf("%s honks: BEEP BEEP!", c.name)
}
