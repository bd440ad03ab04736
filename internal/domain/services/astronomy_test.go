package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/prototypes/internal/domain/entities"
	"github.com/ersonp/prototypes/internal/domain/query"
)

func testStars() []entities.Star {
	return []entities.Star{
		{Name: "Sirius", VisualMagnitude: -1.46, Constellation: "Canis Major", LightYearsFromEarth: 8.6, Color: "blue"},
		{Name: "Capella", VisualMagnitude: 0.08, Constellation: "Auriga", LightYearsFromEarth: 42, Color: "yellow"},
		{Name: "Rigel", VisualMagnitude: 0.13, Constellation: "Orion", LightYearsFromEarth: 860, Color: "blue"},
		{Name: "Vega", VisualMagnitude: 0.03, Constellation: "Lyra", LightYearsFromEarth: 25, Color: "blue"},
		{Name: "Alpha Centauri", VisualMagnitude: -0.27, LightYearsFromEarth: 4.4, Color: "yellow"},
		{Name: "Betelgeuse", VisualMagnitude: 0.5, Constellation: "Orion", LightYearsFromEarth: 640, Color: "red"},
	}
}

func TestStarsInConstellations(t *testing.T) {
	constellations := []entities.Constellation{
		{Name: "Orion", AlternateNames: []string{"The Hunter"}, Stars: []string{"Betelgeuse", "Rigel"}},
		{Name: "The Big Dipper", Stars: []string{"Dubhe", "Alkaid"}},
	}

	stars := StarsInConstellations(constellations, testStars())

	require.Len(t, stars, 2)
	assert.Equal(t, "Rigel", stars[0].Name)
	assert.Equal(t, "Betelgeuse", stars[1].Name)
	assert.Equal(t, testStars()[2], stars[0], "records are returned whole")
}

func TestStarsByColor(t *testing.T) {
	byColor := StarsByColor(testStars())

	assert.Equal(t, []string{"blue", "yellow", "red"}, byColor.Keys())
	blue, _ := byColor.Get("blue")
	assert.Equal(t, []string{"Sirius", "Rigel", "Vega"}, query.Map(blue, starName))

	total := 0
	for _, stars := range byColor.Map() {
		total += len(stars)
	}
	assert.Equal(t, len(testStars()), total)
}

func TestConstellationsStarsExistIn(t *testing.T) {
	assert.Equal(t,
		[]string{"Canis Major", "Lyra", "Auriga", "Orion", "Orion"},
		ConstellationsStarsExistIn(testStars()))
	assert.Empty(t, ConstellationsStarsExistIn(nil))
}
