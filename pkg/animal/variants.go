package animal

import "fmt"

type Dog struct{ base }

func NewDog(name, species string) *Dog {
	return &Dog{base{name: name, species: species}}
}

func (d *Dog) Move() string {
	return fmt.Sprintf("%s the %s is running and wagging its tail!", d.name, d.species)
}

func (d *Dog) MakeSound() string {
	return fmt.Sprintf("%s barks: WOOF WOOF!", d.name)
}

type Bird struct{ base }

func NewBird(name, species string) *Bird {
	return &Bird{base{name: name, species: species}}
}

func (b *Bird) Move() string {
	return fmt.Sprintf("%s the %s is soaring through the air!", b.name, b.species)
}

func (b *Bird) MakeSound() string {
	return fmt.Sprintf("%s chirps: TWEET TWEET!", b.name)
}

type Fish struct{ base }

func NewFish(name, species string) *Fish {
	return &Fish{base{name: name, species: species}}
}

func (f *Fish) Move() string {
	return fmt.Sprintf("%s the %s is swimming gracefully underwater!", f.name, f.species)
}

func (f *Fish) MakeSound() string {
	return fmt.Sprintf("%s makes bubbles: *blub blub*", f.name)
}

type Snake struct{ base }

func NewSnake(name, species string) *Snake {
	return &Snake{base{name: name, species: species}}
}

func (s *Snake) Move() string {
	return fmt.Sprintf("%s the %s is slithering across the ground!", s.name, s.species)
}

func (s *Snake) MakeSound() string {
	return fmt.Sprintf("%s hisses: HISSSS!", s.name)
}
