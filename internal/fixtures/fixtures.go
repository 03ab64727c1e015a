// Package fixtures embeds the seed dataset the in-memory collections are built from.
package fixtures

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"wanderlust/internal/domain"
)

//go:embed data/dataset.json
var datasetJSON []byte

// Load decodes the embedded dataset. Each call returns fresh slices.
func Load() (domain.Dataset, error) {
	var ds domain.Dataset
	if err := json.Unmarshal(datasetJSON, &ds); err != nil {
		return domain.Dataset{}, fmt.Errorf("decode embedded dataset: %w", err)
	}
	return ds, nil
}

// Embedded is a domain.DatasetSource backed by the compiled-in fixtures.
type Embedded struct{}

func (Embedded) LoadDataset(context.Context) (domain.Dataset, error) { return Load() }
