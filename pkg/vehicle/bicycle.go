package vehicle

import "fmt"

const DefaultGearCount = 21

type Bicycle struct {
	base
	gearCount int
}

type BicycleOption func(*Bicycle)

func WithGearCount(gears int) BicycleOption {
	return func(b *Bicycle) {
		b.gearCount = gears
	}
}

func NewBicycle(name string, speed int, opts ...BicycleOption) *Bicycle {
	b := &Bicycle{
		base:      base{name: name, speed: speed},
		gearCount: DefaultGearCount,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Bicycle) GearCount() int {
	return b.gearCount
}

func (b *Bicycle) Move() string {
	return fmt.Sprintf("%s is pedaling along the path at %d mph!", b.name, b.speed)
}

func (b *Bicycle) RingBell() string {
	return fmt.Sprintf("%s rings the bell: RING RING!", b.name)
}
