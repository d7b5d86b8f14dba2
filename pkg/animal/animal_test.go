package animal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimal_Dispatch(t *testing.T) {
	cases := []struct {
		animal Animal
		move   string
		sound  string
	}{
		{NewDog("Buddy", "Golden Retriever"), "Buddy the Golden Retriever is running and wagging its tail!", "Buddy barks: WOOF WOOF!"},
		{NewBird("Tweety", "Canary"), "Tweety the Canary is soaring through the air!", "Tweety chirps: TWEET TWEET!"},
		{NewFish("Nemo", "Clownfish"), "Nemo the Clownfish is swimming gracefully underwater!", "Nemo makes bubbles: *blub blub*"},
		{NewSnake("Slither", "Python"), "Slither the Python is slithering across the ground!", "Slither hisses: HISSSS!"},
	}
	for _, c := range cases {
		t.Run(c.animal.Name(), func(t *testing.T) {
			assert.Equal(t, c.move, c.animal.Move())
			assert.Equal(t, c.sound, c.animal.MakeSound())
		})
	}
}

func TestAnimal_Attributes(t *testing.T) {
	var a Animal = NewFish("Nemo", "Clownfish")
	assert.Equal(t, "Nemo", a.Name())
	assert.Equal(t, "Clownfish", a.Species())
}
