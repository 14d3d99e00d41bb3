package league

import (
	"fmt"
	"strings"
)

const (
	NameBundesliga    = "Germany Bundesliga"
	NamePremierLeague = "England Premier League"
	NameLigue1        = "France Ligue 1"
	NameSerieA        = "Italy Serie A"
	NameLaLiga        = "Spain La Liga"
)

// League is a supported domestic competition and the file holding its season.
type League struct {
	ID          string
	Name        string
	CountryCode string
	Season      string
	File        string
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if strings.TrimSpace(l.File) == "" {
		return fmt.Errorf("league %s file is required", l.ID)
	}

	return nil
}

func defaultLeagues() []League {
	return []League{
		{ID: "ger1", Name: NameBundesliga, CountryCode: "DE", Season: "2022-23", File: "ger1_2022-23.csv"},
		{ID: "eng1", Name: NamePremierLeague, CountryCode: "GB", Season: "2022-23", File: "eng1_2022-23.csv"},
		{ID: "fra1", Name: NameLigue1, CountryCode: "FR", Season: "2022-23", File: "fra1_2022-23.csv"},
		{ID: "italy1", Name: NameSerieA, CountryCode: "IT", Season: "2022-23", File: "italy1_2022-23.csv"},
		{ID: "spain1", Name: NameLaLiga, CountryCode: "ES", Season: "2022-23", File: "spain1_2022-23.csv"},
	}
}

// Catalog is the fixed set of supported leagues.
type Catalog struct {
	items []League
}

func DefaultCatalog() Catalog {
	return Catalog{items: defaultLeagues()}
}

func (c Catalog) List() []League {
	out := make([]League, len(c.items))
	copy(out, c.items)
	return out
}

// Resolve finds a league by display name or by id.
func (c Catalog) Resolve(key string) (League, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return League{}, false
	}
	for _, item := range c.items {
		if item.Name == key || strings.EqualFold(item.ID, key) {
			return item, true
		}
	}
	return League{}, false
}

// WithFiles returns a copy of c with file names replaced for the given leagues.
// Overrides may only name leagues already in the catalog.
func (c Catalog) WithFiles(overrides map[string]string) (Catalog, error) {
	items := c.List()
	for key, file := range overrides {
		file = strings.TrimSpace(file)
		if file == "" {
			return Catalog{}, fmt.Errorf("empty file for league %q", key)
		}

		found := false
		for i := range items {
			if items[i].Name == strings.TrimSpace(key) || strings.EqualFold(items[i].ID, strings.TrimSpace(key)) {
				items[i].File = file
				found = true
				break
			}
		}
		if !found {
			return Catalog{}, fmt.Errorf("unknown league %q in file overrides", key)
		}
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return Catalog{}, err
		}
	}

	return Catalog{items: items}, nil
}
