// Package hero models superheroes with a bounded energy pool. Power use and
// flight spend energy, resting restores it, and every action that cannot be
// afforded is refused with a message instead of changing state.
package hero

import (
	"fmt"

	"github.com/srevinsaju/menagerie/pkg/diag"
)

const (
	MinPowerLevel     = 0
	MaxPowerLevel     = 100
	DefaultPowerLevel = 50

	MaxEnergy    = 100
	PowerCost    = 20
	FlightCost   = 15
	RestRecovery = 30
)

type Hero interface {
	Name() string
	RealName() string
	Introduce() string
	UsePower() string
	Rest() string

	PowerLevel() int
	// SetPowerLevel stores level if it is within [MinPowerLevel, MaxPowerLevel].
	// Out of range values leave the hero unchanged and are reported as a
	// warning.
	SetPowerLevel(level int) diag.Diagnostics

	Energy() int
	Active() bool
}

type Flyer interface {
	Fly() string
	Land() string
	Flying() bool
}

type GadgetCarrier interface {
	AddGadget(gadget string) string
	Gadgets() []string
}

type Heroes []Hero

type Superhero struct {
	name     string
	realName string

	powerLevel int
	energy     int
	active     bool
}

func New(name, realName string, opts ...Option) *Superhero {
	s := newSettings(opts)
	h := newSuperhero(name, realName, s)
	return &h
}

func newSuperhero(name, realName string, s settings) Superhero {
	h := Superhero{
		name:       name,
		realName:   realName,
		powerLevel: DefaultPowerLevel,
		energy:     MaxEnergy,
		active:     true,
	}
	if validPowerLevel(s.powerLevel) {
		h.powerLevel = s.powerLevel
	}
	return h
}

func (h *Superhero) Name() string {
	return h.name
}

func (h *Superhero) RealName() string {
	return h.realName
}

func (h *Superhero) Active() bool {
	return h.active
}

func (h *Superhero) Energy() int {
	return h.energy
}

func (h *Superhero) Introduce() string {
	return fmt.Sprintf("I am %s! My real identity is %s.", h.name, h.realName)
}

func (h *Superhero) UsePower() string {
	if !h.spend(PowerCost) {
		return fmt.Sprintf("%s is too tired to use their power!", h.name)
	}
	return fmt.Sprintf("%s uses their power! Energy remaining: %d", h.name, h.energy)
}

func (h *Superhero) Rest() string {
	h.energy += RestRecovery
	if h.energy > MaxEnergy {
		h.energy = MaxEnergy
	}
	return fmt.Sprintf("%s rests and recovers energy. Current energy: %d", h.name, h.energy)
}

func (h *Superhero) PowerLevel() int {
	return h.powerLevel
}

func (h *Superhero) SetPowerLevel(level int) diag.Diagnostics {
	var diags diag.Diagnostics
	if !validPowerLevel(level) {
		return diags.Append(diag.NewWarning(
			fmt.Sprintf("hero.%s.power_level", h.name),
			fmt.Sprintf("Power level must be between %d and %d!", MinPowerLevel, MaxPowerLevel),
			fmt.Sprintf("got %d, keeping %d", level, h.powerLevel),
		))
	}
	h.powerLevel = level
	return diags
}

// spend deducts cost from the energy pool when the pool can cover it and
// reports whether it did.
func (h *Superhero) spend(cost int) bool {
	if h.energy < cost {
		return false
	}
	h.energy -= cost
	return true
}

func validPowerLevel(level int) bool {
	return level >= MinPowerLevel && level <= MaxPowerLevel
}
