package vehicle

import "fmt"

const DefaultBoatType = "sailboat"

type Boat struct {
	base
	boatType string
}

type BoatOption func(*Boat)

func WithBoatType(boatType string) BoatOption {
	return func(b *Boat) {
		b.boatType = boatType
	}
}

func NewBoat(name string, speed int, opts ...BoatOption) *Boat {
	b := &Boat{
		base:     base{name: name, speed: speed},
		boatType: DefaultBoatType,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Boat) BoatType() string {
	return b.boatType
}

// Move reports speed in knots, unlike the land and air vehicles.
func (b *Boat) Move() string {
	return fmt.Sprintf("%s is sailing across the water at %d knots!", b.name, b.speed)
}

func (b *Boat) Anchor() string {
	return fmt.Sprintf("%s drops anchor and stays in place.", b.name)
}
