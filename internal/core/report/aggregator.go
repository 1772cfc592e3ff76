package report

// Aggregate groups pairs by the mode's key and reduces each group.
// Rows come out in first-seen order of their group label, which gives the
// ranker a deterministic tie order. Pairs the mode cannot use (no fact, NULL
// playtime, blank publisher) are dropped before grouping, so a group with no
// usable observation never appears.
func Aggregate(mode Mode, pairs []Pair) ([]Row, error) {
	spec, ok := mode.Spec()
	if !ok {
		return nil, invalidArgumentf("unknown mode %q", mode)
	}

	groups := make(map[string][]observation)
	var order []string
	var seen map[string]map[int64]bool
	if spec.distinctGames {
		seen = make(map[string]map[int64]bool)
	}

	for _, p := range pairs {
		label, obs, ok := spec.observe(p)
		if !ok {
			continue
		}
		if seen != nil {
			games, exists := seen[label]
			if !exists {
				games = make(map[int64]bool)
				seen[label] = games
			}
			if games[p.Game.AppID] {
				continue
			}
			games[p.Game.AppID] = true
		}
		if _, exists := groups[label]; !exists {
			order = append(order, label)
		}
		groups[label] = append(groups[label], obs)
	}

	rows := make([]Row, 0, len(order))
	for _, label := range order {
		rows = append(rows, Row{Label: label, Values: spec.fold(groups[label])})
	}
	return rows, nil
}

// Join pairs every game with each of its facts. Games without facts are kept
// with a nil Fact so dim_game-only modes still see them.
func Join(games []GameRecord, facts []SalesFact) []Pair {
	byApp := make(map[int64][]int, len(facts))
	for i, f := range facts {
		byApp[f.AppID] = append(byApp[f.AppID], i)
	}

	pairs := make([]Pair, 0, len(facts)+len(games))
	for _, g := range games {
		idx := byApp[g.AppID]
		if len(idx) == 0 {
			pairs = append(pairs, Pair{Game: g})
			continue
		}
		for _, i := range idx {
			fact := facts[i]
			pairs = append(pairs, Pair{Game: g, Fact: &fact})
		}
	}
	return pairs
}
