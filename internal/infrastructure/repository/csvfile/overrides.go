package csvfile

import (
	"os"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

type fileOverrides struct {
	Leagues map[string]string `yaml:"leagues"`
}

// LoadFileOverrides reads a YAML document of the form
//
//	leagues:
//	  Italy Serie A: italy1_2023-24.csv
//
// An empty path yields no overrides.
func LoadFileOverrides(path string) (map[string]string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, crerr.Wrapf(err, "read league file overrides %s", path)
	}

	var doc fileOverrides
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, crerr.Wrapf(err, "parse league file overrides %s", path)
	}

	return doc.Leagues, nil
}
