package a

type Boss struct {
	Name      string
	Sidekicks []string
}

type Sidekick struct {
	Name    string
	Boss    string
	Loyalty int
}

func bad(bosses []Boss, sidekicks []Sidekick) map[string]int {
	totals := make(map[string]int)
	for _, b := range bosses {
		for _, s := range sidekicks {
			if s.Boss == b.Name { // want "nested-loop join of bosses and sidekicks"
				totals[b.Name] += s.Loyalty
			}
		}
	}
	return totals
}

func badReversed(bosses []Boss, sidekicks []Sidekick) int {
	n := 0
	for _, b := range bosses {
		for _, s := range sidekicks {
			if s.Loyalty > 3 && (b.Name == s.Boss) { // want "nested-loop join of bosses and sidekicks"
				n++
			}
		}
	}
	return n
}

func goodIndexed(bosses []Boss, sidekicks []Sidekick) map[string]int {
	// One side indexed - OK
	byBoss := make(map[string]int)
	for _, s := range sidekicks {
		byBoss[s.Boss] += s.Loyalty
	}
	totals := make(map[string]int)
	for _, b := range bosses {
		totals[b.Name] = byBoss[b.Name]
	}
	return totals
}

func goodTraversal(bosses []Boss, name string) bool {
	// Walking the outer element's own field - OK
	for _, b := range bosses {
		for _, s := range b.Sidekicks {
			if s == name {
				return true
			}
		}
	}
	return false
}

func goodSameCollection(items []Sidekick) int {
	// Self-join - OK
	n := 0
	for _, a := range items {
		for _, b := range items {
			if a.Boss == b.Boss {
				n++
			}
		}
	}
	return n
}

func goodNoMatch(bosses []Boss, sidekicks []Sidekick) int {
	// No comparison between the two loop variables - OK
	n := 0
	for _, b := range bosses {
		for _, s := range sidekicks {
			if s.Loyalty > len(b.Name) {
				n++
			}
		}
	}
	return n
}
