package orchestra

import (
	"context"
	"fmt"
	"io"

	"github.com/srevinsaju/menagerie/pkg/animal"
)

type animalDemo struct{}

func (animalDemo) Name() string {
	return "animals"
}

func (animalDemo) Title() string {
	return "Animal Polymorphism Demo"
}

func (d animalDemo) Run(ctx context.Context, w io.Writer) error {
	logger := demoLogger(ctx, d.Name())
	p := &printer{w: w}
	header(p, d.Title())

	animals := animal.Animals{
		animal.NewDog("Buddy", "Golden Retriever"),
		animal.NewBird("Tweety", "Canary"),
		animal.NewFish("Nemo", "Clownfish"),
		animal.NewSnake("Slither", "Python"),
	}

	for _, a := range animals {
		if err := ctx.Err(); err != nil {
			return err
		}
		logger.Tracef("showing %T %s", a, a.Name())
		section(p, fmt.Sprintf("%s the %s", a.Name(), a.Species()))
		p.println(a.Move())
		p.println(a.MakeSound())
		p.println()
	}
	return p.err
}
