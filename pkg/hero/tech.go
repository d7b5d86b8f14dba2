package hero

import "fmt"

const DefaultGadgetCapacity = 5

type TechHero struct {
	Superhero

	gadgetCapacity int
	gadgets        []string
}

func NewTechHero(name, realName string, opts ...Option) *TechHero {
	s := newSettings(opts)
	return &TechHero{
		Superhero:      newSuperhero(name, realName, s),
		gadgetCapacity: s.gadgetCapacity,
	}
}

func (h *TechHero) GadgetCapacity() int {
	return h.gadgetCapacity
}

// Gadgets returns a copy of the gadgets in the order they were added.
func (h *TechHero) Gadgets() []string {
	gadgets := make([]string, len(h.gadgets))
	copy(gadgets, h.gadgets)
	return gadgets
}

func (h *TechHero) AddGadget(gadget string) string {
	if len(h.gadgets) >= h.gadgetCapacity {
		return fmt.Sprintf("%s's gadget belt is full!", h.name)
	}
	h.gadgets = append(h.gadgets, gadget)
	return fmt.Sprintf("%s adds %s to their arsenal!", h.name, gadget)
}

// UsePower deploys the first gadget. Without gadgets nothing is spent,
// whatever the energy level.
func (h *TechHero) UsePower() string {
	if len(h.gadgets) == 0 {
		return fmt.Sprintf("%s has no gadgets to use!", h.name)
	}
	if !h.spend(PowerCost) {
		return fmt.Sprintf("%s is too tired to use gadgets!", h.name)
	}
	return fmt.Sprintf("%s deploys %s! Energy: %d", h.name, h.gadgets[0], h.energy)
}
