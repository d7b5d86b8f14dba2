package vehicle

import "fmt"

const DefaultAltitude = 30000

type Plane struct {
	base
	// altitude in feet
	altitude int
}

type PlaneOption func(*Plane)

func WithAltitude(feet int) PlaneOption {
	return func(p *Plane) {
		p.altitude = feet
	}
}

func NewPlane(name string, speed int, opts ...PlaneOption) *Plane {
	p := &Plane{
		base:     base{name: name, speed: speed},
		altitude: DefaultAltitude,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Plane) Altitude() int {
	return p.altitude
}

func (p *Plane) Move() string {
	return fmt.Sprintf("%s is flying through the sky at %d mph at %d feet!", p.name, p.speed, p.altitude)
}

func (p *Plane) Takeoff() string {
	return fmt.Sprintf("%s takes off and climbs to %d feet!", p.name, p.altitude)
}
