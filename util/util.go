package util

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/chapette/model"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const OutputSuffix = "_with_fingerings"

func GetSortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// OutputPath puts OutputSuffix between the base name and the extension of
// input, keeping it in the same directory.
func OutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + OutputSuffix + ext
}

func IsMidiPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".mid" || ext == ".midi"
}

func ReadScore(path string) (*model.Score, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read score %v", path)
	}

	var score model.Score
	if err := json.Unmarshal(dat, &score); err != nil {
		return nil, errors.Wrapf(err, "could not decode score %v", path)
	}
	return &score, nil
}

func WriteScore(path string, score *model.Score) error {
	dat, err := json.MarshalIndent(score, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not encode score")
	}
	if err := os.WriteFile(path, append(dat, '\n'), 0644); err != nil {
		return errors.Wrapf(err, "could not write score %v", path)
	}
	return nil
}
