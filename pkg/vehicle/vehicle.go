// Package vehicle models things that move people around. Every variant
// satisfies Vehicle with its own Move; Stop is shared.
package vehicle

import "fmt"

type Describable interface {
	Name() string
	Speed() int
}

type Movable interface {
	// Move describes how the vehicle travels at its cruising speed
	Move() string
	// Stop describes the vehicle coming to rest
	Stop() string
}

type Vehicle interface {
	Describable
	Movable
}

type Honker interface {
	Honk() string
}

type TakeoffCapable interface {
	Takeoff() string
}

type Anchorer interface {
	Anchor() string
}

type BellRinger interface {
	RingBell() string
}

// base carries the attributes and behavior common to every vehicle. It has
// no Move, so it cannot be used as a Vehicle by itself.
type base struct {
	name  string
	speed int
}

func (b base) Name() string {
	return b.name
}

func (b base) Speed() int {
	return b.speed
}

func (b base) Stop() string {
	return fmt.Sprintf("%s comes to a stop.", b.name)
}

type Vehicles []Vehicle

func (v Vehicles) Names() []string {
	names := make([]string, 0, len(v))
	for _, vehicle := range v {
		names = append(names, vehicle.Name())
	}
	return names
}
