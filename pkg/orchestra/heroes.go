package orchestra

import (
	"context"
	"io"
	"strings"

	"github.com/srevinsaju/menagerie/pkg/hero"
)

type heroDemo struct{}

func (heroDemo) Name() string {
	return "heroes"
}

func (heroDemo) Title() string {
	return "Superhero Class System"
}

func (d heroDemo) Run(ctx context.Context, w io.Writer) error {
	logger := demoLogger(ctx, d.Name())
	p := &printer{w: w}
	header(p, d.Title())

	superman := hero.NewFlyingHero("Superman", "Clark Kent", hero.WithFlightSpeed(500))
	batman := hero.NewTechHero("Batman", "Bruce Wayne", hero.WithGadgetCapacity(10))
	wonderWoman := hero.New("Wonder Woman", "Diana Prince")

	assignPowerLevel(p, superman, 95)
	assignPowerLevel(p, batman, 80)
	assignPowerLevel(p, wonderWoman, 90)

	for _, gadget := range []string{"Batarang", "Grappling Hook", "Smoke Bomb"} {
		logger.Debug(batman.AddGadget(gadget))
	}

	heroes := hero.Heroes{superman, batman, wonderWoman}
	for _, h := range heroes {
		if err := ctx.Err(); err != nil {
			return err
		}
		logger.Tracef("showing %T %s", h, h.Name())
		section(p, h.Name())
		p.println(h.Introduce())
		p.printf("Power Level: %d\n", h.PowerLevel())
		p.println(h.UsePower())

		switch special := h.(type) {
		case hero.Flyer:
			p.println(special.Fly())
			p.println(special.Land())
		case hero.GadgetCarrier:
			p.printf("Gadgets: %s\n", strings.Join(special.Gadgets(), ", "))
		}

		p.println(h.Rest())
		p.println()
	}
	return p.err
}

// assignPowerLevel sets level on h. A refused level is written to the
// transcript and h keeps its current power level.
func assignPowerLevel(p *printer, h hero.Hero, level int) {
	diags := h.SetPowerLevel(level)
	if !diags.HasWarnings() || p.err != nil {
		return
	}
	p.err = diags.Write(p.w)
}
