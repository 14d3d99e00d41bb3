package matchstats

import "slices"

// FindMatches returns every fixture with the given home/away pair, in dataset order.
func FindMatches(ds Dataset, homeTeam, awayTeam string) []MatchRecord {
	out := make([]MatchRecord, 0, 1)
	for _, match := range ds.Matches {
		if match.HomeTeam == homeTeam && match.AwayTeam == awayTeam {
			out = append(out, match)
		}
	}
	return out
}

// Teams returns the sorted distinct home teams and away teams of ds.
func Teams(ds Dataset) (home []string, away []string) {
	homeSet := make(map[string]struct{})
	awaySet := make(map[string]struct{})
	for _, match := range ds.Matches {
		if match.HomeTeam != "" {
			homeSet[match.HomeTeam] = struct{}{}
		}
		if match.AwayTeam != "" {
			awaySet[match.AwayTeam] = struct{}{}
		}
	}
	return sortedKeys(homeSet), sortedKeys(awaySet)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	slices.Sort(out)
	return out
}
