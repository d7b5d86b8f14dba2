package hero

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHero_Defaults(t *testing.T) {
	h := New("Wonder Woman", "Diana Prince")
	assert.Equal(t, DefaultPowerLevel, h.PowerLevel())
	assert.Equal(t, MaxEnergy, h.Energy())
	assert.True(t, h.Active())

	assert.Equal(t, DefaultFlightSpeed, NewFlyingHero("Storm", "Ororo Munroe").FlightSpeed())
	assert.Equal(t, DefaultGadgetCapacity, NewTechHero("Iron Man", "Tony Stark").GadgetCapacity())
}

func TestHero_UsePowerDispatch(t *testing.T) {
	batman := NewTechHero("Batman", "Bruce Wayne", WithPowerLevel(80), WithGadgetCapacity(10))
	batman.AddGadget("Batarang")

	heroes := Heroes{
		New("Wonder Woman", "Diana Prince", WithPowerLevel(90)),
		NewFlyingHero("Superman", "Clark Kent", WithPowerLevel(95), WithFlightSpeed(500)),
		batman,
	}
	expected := []string{
		"Wonder Woman uses their power! Energy remaining: 80",
		"Superman unleashes aerial attacks from above! Energy: 80",
		"Batman deploys Batarang! Energy: 80",
	}
	for i, h := range heroes {
		assert.Equal(t, expected[i], h.UsePower())
	}
}

func TestHero_Introduce(t *testing.T) {
	var h Hero = NewFlyingHero("Superman", "Clark Kent")
	assert.Equal(t, "I am Superman! My real identity is Clark Kent.", h.Introduce())
}

func TestHero_UsePowerTooTired(t *testing.T) {
	h := New("Wonder Woman", "Diana Prince")
	for i := 0; i < 5; i++ {
		h.UsePower()
	}
	require.Equal(t, 0, h.Energy())
	assert.Equal(t, "Wonder Woman is too tired to use their power!", h.UsePower())
	assert.Equal(t, 0, h.Energy())
}

func TestHero_RestSaturates(t *testing.T) {
	h := New("Wonder Woman", "Diana Prince")
	h.UsePower()
	assert.Equal(t, "Wonder Woman rests and recovers energy. Current energy: 100", h.Rest())
	for i := 0; i < 3; i++ {
		h.Rest()
		assert.Equal(t, MaxEnergy, h.Energy())
	}

	h.UsePower()
	h.UsePower()
	h.UsePower()
	assert.Equal(t, 40, h.Energy())
	h.Rest()
	assert.Equal(t, 70, h.Energy())
}

func TestHero_SetPowerLevel(t *testing.T) {
	h := New("Wonder Woman", "Diana Prince", WithPowerLevel(90))

	for _, level := range []int{150, -5, 101, -1} {
		diags := h.SetPowerLevel(level)
		require.Equal(t, 1, diags.Len(), "level %d", level)
		assert.True(t, diags.HasWarnings())
		assert.False(t, diags.HasErrors())
		assert.Equal(t, "Power level must be between 0 and 100!", diags[0].Summary)
		assert.Equal(t, 90, h.PowerLevel())
	}

	assert.Empty(t, h.SetPowerLevel(42))
	assert.Equal(t, 42, h.PowerLevel())

	assert.Empty(t, h.SetPowerLevel(0))
	assert.Empty(t, h.SetPowerLevel(100))
	assert.Equal(t, 100, h.PowerLevel())
}

func TestHero_InvalidInitialPowerLevel(t *testing.T) {
	assert.Equal(t, DefaultPowerLevel, New("x", "y", WithPowerLevel(150)).PowerLevel())
	assert.Equal(t, DefaultPowerLevel, NewTechHero("x", "y", WithPowerLevel(-5)).PowerLevel())
}

func TestFlyingHero_FlyAndLand(t *testing.T) {
	superman := NewFlyingHero("Superman", "Clark Kent", WithPowerLevel(95), WithFlightSpeed(500))
	assert.False(t, superman.Flying())

	msg := superman.Fly()
	assert.Contains(t, msg, "500")
	assert.Equal(t, "Superman soars through the sky at 500 mph!", msg)
	assert.Equal(t, 85, superman.Energy())
	assert.True(t, superman.Flying())

	assert.Equal(t, "Superman lands gracefully on the ground.", superman.Land())
	assert.False(t, superman.Flying())

	assert.Equal(t, "Superman lands gracefully on the ground.", superman.Land())
	assert.False(t, superman.Flying())
}

func TestFlyingHero_TooTiredToFly(t *testing.T) {
	h := NewFlyingHero("Superman", "Clark Kent")
	for i := 0; i < 6; i++ {
		h.Fly()
	}
	require.Equal(t, 10, h.Energy())
	h.Land()

	assert.Equal(t, "Superman is too tired to fly!", h.Fly())
	assert.Equal(t, 10, h.Energy())
	assert.False(t, h.Flying())

	assert.Equal(t, "Superman is too tired to use aerial powers!", h.UsePower())
	assert.Equal(t, 10, h.Energy())
}

func TestTechHero_NoGadgets(t *testing.T) {
	h := NewTechHero("Batman", "Bruce Wayne")
	assert.Equal(t, "Batman has no gadgets to use!", h.UsePower())
	assert.Equal(t, MaxEnergy, h.Energy())

	h.AddGadget("Batarang")
	for i := 0; i < 5; i++ {
		h.UsePower()
	}
	require.Equal(t, 0, h.Energy())

	empty := NewTechHero("Robin", "Dick Grayson")
	assert.Equal(t, "Robin has no gadgets to use!", empty.UsePower())
	assert.Equal(t, MaxEnergy, empty.Energy())
}

func TestTechHero_SixUses(t *testing.T) {
	batman := NewTechHero("Batman", "Bruce Wayne", WithPowerLevel(80), WithGadgetCapacity(10))
	batman.AddGadget("Batarang")
	batman.AddGadget("Grappling Hook")
	batman.AddGadget("Smoke Bomb")

	for i := 1; i <= 5; i++ {
		msg := batman.UsePower()
		assert.Contains(t, msg, "deploys Batarang", "use %d", i)
		assert.Equal(t, MaxEnergy-i*PowerCost, batman.Energy())
	}
	assert.Equal(t, "Batman is too tired to use gadgets!", batman.UsePower())
	assert.Equal(t, 0, batman.Energy())
}

func TestTechHero_AddGadget(t *testing.T) {
	h := NewTechHero("Batman", "Bruce Wayne", WithGadgetCapacity(2))
	assert.Equal(t, "Batman adds Batarang to their arsenal!", h.AddGadget("Batarang"))
	assert.Equal(t, "Batman adds Smoke Bomb to their arsenal!", h.AddGadget("Smoke Bomb"))
	assert.Equal(t, "Batman's gadget belt is full!", h.AddGadget("Grappling Hook"))
	assert.Equal(t, []string{"Batarang", "Smoke Bomb"}, h.Gadgets())

	gadgets := h.Gadgets()
	gadgets[0] = "Bat-Shark-Repellent"
	assert.Equal(t, "Batarang", h.Gadgets()[0])
}

func TestHero_EnergyStaysBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	flyer := NewFlyingHero("Superman", "Clark Kent")
	tech := NewTechHero("Batman", "Bruce Wayne")
	tech.AddGadget("Batarang")
	base := New("Wonder Woman", "Diana Prince")

	for i := 0; i < 2000; i++ {
		switch rng.Intn(5) {
		case 0:
			flyer.Fly()
		case 1:
			flyer.Land()
		case 2:
			flyer.Rest()
			tech.Rest()
			base.Rest()
		default:
			flyer.UsePower()
			tech.UsePower()
			base.UsePower()
		}
		for _, h := range []Hero{flyer, tech, base} {
			assert.GreaterOrEqual(t, h.Energy(), 0)
			assert.LessOrEqual(t, h.Energy(), MaxEnergy)
		}
	}
}

func TestHero_Capabilities(t *testing.T) {
	var h Hero = NewFlyingHero("Superman", "Clark Kent")
	_, ok := h.(Flyer)
	assert.True(t, ok)
	_, ok = h.(GadgetCarrier)
	assert.False(t, ok)

	h = NewTechHero("Batman", "Bruce Wayne")
	_, ok = h.(GadgetCarrier)
	assert.True(t, ok)
	_, ok = h.(Flyer)
	assert.False(t, ok)

	h = New("Wonder Woman", "Diana Prince")
	_, ok = h.(Flyer)
	assert.False(t, ok)
	_, ok = h.(GadgetCarrier)
	assert.False(t, ok)
}
