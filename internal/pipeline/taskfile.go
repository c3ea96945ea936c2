package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type taskFile struct {
	Tasks []TaskSpec `yaml:"tasks"`
}

// LoadTaskFile reads a YAML task definition file replacing the built-in
// sequence. The file must define contiguous ordinals starting at 1.
func LoadTaskFile(path string) ([]TaskSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	var tf taskFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("unmarshal task file: %w", err)
	}

	if err := ValidateTasks(tf.Tasks); err != nil {
		return nil, fmt.Errorf("task file %s: %w", path, err)
	}
	return tf.Tasks, nil
}
