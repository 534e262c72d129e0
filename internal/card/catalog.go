package card

import (
	"fmt"
	"strconv"
	"strings"
)

// Suits in catalog order
var Suits = []string{"Wands", "Cups", "Swords", "Pentacles"}

var courts = []string{"Page", "Knight", "Queen", "King"}

// majorArcana lists the major arcana in order with their image file names
var majorArcana = []struct {
	name     string
	filename string
}{
	{"The Fool", "RWS_Tarot_00_Fool.jpg"},
	{"The Magician", "RWS_Tarot_01_Magician.jpg"},
	{"The High Priestess", "RWS_Tarot_02_High_Priestess.jpg"},
	{"The Empress", "RWS_Tarot_03_Empress.jpg"},
	{"The Emperor", "RWS_Tarot_04_Emperor.jpg"},
	{"The Hierophant", "RWS_Tarot_05_Hierophant.jpg"},
	{"The Lovers", "RWS_Tarot_06_Lovers.jpg"},
	{"The Chariot", "RWS_Tarot_07_Chariot.jpg"},
	{"Strength", "RWS_Tarot_08_Strength.jpg"},
	{"The Hermit", "RWS_Tarot_09_Hermit.jpg"},
	{"Wheel of Fortune", "RWS_Tarot_10_Wheel_of_Fortune.jpg"},
	{"Justice", "RWS_Tarot_11_Justice.jpg"},
	{"The Hanged Man", "RWS_Tarot_12_Hanged_Man.jpg"},
	{"Death", "RWS_Tarot_13_Death.jpg"},
	{"Temperance", "RWS_Tarot_14_Temperance.jpg"},
	{"The Devil", "RWS_Tarot_15_Devil.jpg"},
	{"The Tower", "RWS_Tarot_16_Tower.jpg"},
	{"The Star", "RWS_Tarot_17_Star.jpg"},
	{"The Moon", "RWS_Tarot_18_Moon.jpg"},
	{"The Sun", "RWS_Tarot_19_Sun.jpg"},
	{"Judgement", "RWS_Tarot_20_Judgement.jpg"},
	{"The World", "RWS_Tarot_21_World.jpg"},
}

const imageRoot = "/images/tarot/"

// catalog is built once at init and never mutated; accessors hand out copies.
var (
	catalog []Card
	byID    map[string]int
)

func init() {
	catalog = buildCatalog()
	byID = make(map[string]int, len(catalog))
	for i, c := range catalog {
		byID[c.ID] = i
	}
}

// All returns the full 78-card catalog, major arcana first
func All() []Card {
	out := make([]Card, len(catalog))
	for i, c := range catalog {
		out[i] = c.Clone()
	}
	return out
}

// ByID looks a card up by its catalog ID
func ByID(id string) (Card, bool) {
	i, ok := byID[id]
	if !ok {
		return Card{}, false
	}
	return catalog[i].Clone(), true
}

func buildCatalog() []Card {
	cards := make([]Card, 0, 78)

	for i, m := range majorArcana {
		cards = append(cards, Card{
			ID:       fmt.Sprintf("MA%d", i),
			Name:     m.name,
			Meaning:  fmt.Sprintf("General meaning for %s. Represents major life lessons and archetypal themes.", m.name),
			Image:    imageRoot + m.filename,
			Keywords: strings.Fields(strings.ToLower(m.name)),
		})
	}

	for _, suit := range Suits {
		initial := suit[:1]
		lowerSuit := strings.ToLower(suit)

		// Numbered cards (Ace to 10)
		for n := 1; n <= 10; n++ {
			rank := strconv.Itoa(n)
			if n == 1 {
				rank = "Ace"
			}
			name := fmt.Sprintf("%s of %s", rank, suit)
			cards = append(cards, Card{
				ID:       fmt.Sprintf("MI%s%d", initial, n),
				Name:     name,
				Meaning:  fmt.Sprintf("General meaning for %s. Represents day-to-day events and experiences.", name),
				Image:    fmt.Sprintf("%s%s-%02d.jpg", imageRoot, lowerSuit, n),
				Keywords: []string{strings.ToLower(rank), "of", lowerSuit},
				Suit:     suit,
				Number:   n,
			})
		}

		for k, court := range courts {
			name := fmt.Sprintf("%s of %s", court, suit)
			cards = append(cards, Card{
				ID:       fmt.Sprintf("MI%sC%d", initial, k+1),
				Name:     name,
				Meaning:  fmt.Sprintf("General meaning for %s. Represents personalities or aspects of oneself.", name),
				Image:    fmt.Sprintf("%s%s-%s.jpg", imageRoot, lowerSuit, strings.ToLower(court)),
				Keywords: []string{strings.ToLower(court), "of", lowerSuit},
				Suit:     suit,
				Number:   11 + k,
			})
		}
	}

	return cards
}
