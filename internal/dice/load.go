package dice

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type setFile struct {
	Dice [][]int `yaml:"dice"`
}

// LoadSet reads a dice set from a YAML file of the form:
//
//	dice:
//	  - [1, 2, 3, 4, 5, 6]
//	  - [2, 2, 4, 4, 9, 9]
//	  - [6, 8, 1, 1, 8, 6]
func LoadSet(path string) (Set, error) {
	cleanPath := filepath.Clean(path)
	b, err := os.ReadFile(cleanPath) //nolint:gosec // path is supplied by the operator
	if err != nil {
		return Set{}, err
	}
	var f setFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return Set{}, fmt.Errorf("%w: %v", ErrInvalidDieSpec, err)
		}
		return Set{}, err
	}
	return FromFaces(f.Dice)
}
