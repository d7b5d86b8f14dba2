package hero

import "fmt"

const DefaultFlightSpeed = 100

type FlyingHero struct {
	Superhero

	flightSpeed int
	flying      bool
}

func NewFlyingHero(name, realName string, opts ...Option) *FlyingHero {
	s := newSettings(opts)
	return &FlyingHero{
		Superhero:   newSuperhero(name, realName, s),
		flightSpeed: s.flightSpeed,
	}
}

func (h *FlyingHero) FlightSpeed() int {
	return h.flightSpeed
}

func (h *FlyingHero) Flying() bool {
	return h.flying
}

func (h *FlyingHero) Fly() string {
	if !h.spend(FlightCost) {
		return fmt.Sprintf("%s is too tired to fly!", h.name)
	}
	h.flying = true
	return fmt.Sprintf("%s soars through the sky at %d mph!", h.name, h.flightSpeed)
}

func (h *FlyingHero) Land() string {
	h.flying = false
	return fmt.Sprintf("%s lands gracefully on the ground.", h.name)
}

func (h *FlyingHero) UsePower() string {
	if !h.spend(PowerCost) {
		return fmt.Sprintf("%s is too tired to use aerial powers!", h.name)
	}
	return fmt.Sprintf("%s unleashes aerial attacks from above! Energy: %d", h.name, h.energy)
}
