package hero

type settings struct {
	powerLevel     int
	flightSpeed    int
	gadgetCapacity int
}

// Option configures a hero at construction. Options that do not apply to
// the hero being built are ignored.
type Option func(*settings)

// WithPowerLevel sets the initial power level. Values outside
// [MinPowerLevel, MaxPowerLevel] are ignored and the default is kept.
func WithPowerLevel(level int) Option {
	return func(s *settings) {
		s.powerLevel = level
	}
}

// WithFlightSpeed sets the flight speed of a FlyingHero, in mph.
func WithFlightSpeed(mph int) Option {
	return func(s *settings) {
		s.flightSpeed = mph
	}
}

// WithGadgetCapacity sets how many gadgets a TechHero can carry.
func WithGadgetCapacity(n int) Option {
	return func(s *settings) {
		s.gadgetCapacity = n
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		powerLevel:     DefaultPowerLevel,
		flightSpeed:    DefaultFlightSpeed,
		gadgetCapacity: DefaultGadgetCapacity,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
