package app

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/routeworks/rosterlink/pkg/errors"
	"github.com/routeworks/rosterlink/pkg/reconcile"
)

// LoadMapping reads an explicit field mapping from a YAML file. The file
// is a flat map of source field name to target field name:
//
//	Student Address: Address
//	Grade Level: Grade
func LoadMapping(path string) (reconcile.FieldMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var mapping reconcile.FieldMapping
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	return mapping, nil
}
