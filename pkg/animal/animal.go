// Package animal models creatures that share two behaviors, moving and
// making a sound, each expressed differently per variant.
package animal

type Animal interface {
	Name() string
	Species() string
	Move() string
	MakeSound() string
}

type base struct {
	name    string
	species string
}

func (b base) Name() string {
	return b.name
}

func (b base) Species() string {
	return b.species
}

type Animals []Animal
