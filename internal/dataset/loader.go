package dataset

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed frases_culturales.yaml
var embeddedDataset []byte

// Load reads the dataset from path, or the embedded community dataset
// when path is empty. A path that cannot be read or parsed is a fatal
// initialization error: no classification can proceed without the
// reference data.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return parse(embeddedDataset, "embedded community dataset")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	return parse(data, path)
}

func parse(data []byte, source string) (*Dataset, error) {
	var d Dataset
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", source, err)
	}

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("validate dataset %s: %w", source, err)
	}

	return &d, nil
}
