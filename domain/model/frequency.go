package model

import (
	"fmt"
	"strings"

	"ifcdash/domain/core"
)

// CountByType tabulates entities into a type-name frequency table. Accumulation
// is commutative, so input order never affects the result. An entity whose type
// lookup fails is skipped and reported in the returned warnings; counting
// continues for the remaining entities.
func CountByType(entities []Entity) (FrequencyTable, []error) {
	counts := make(FrequencyTable)
	var warnings []error

	for i, e := range entities {
		typeName, err := e.TypeName()
		if err != nil {
			warnings = append(warnings, fmt.Errorf("%w: entity %d: %v", core.ErrEntityUntyped, i, err))
			continue
		}
		counts[typeName]++
	}

	return counts, warnings
}

// UnnamedLabel is the bucket for entities without a usable display name.
const UnnamedLabel = "Unnamed"

// GroupByNamePrefix tabulates entities of one nominal type by naming
// convention: the display name up to the first ':' becomes the label, so
// "Wall:Ext01" and "Wall:Ext02" both land under "Wall". Entities with an
// absent or empty display name land under UnnamedLabel. Empty input yields an
// empty table; callers render that as a "no data" state.
func GroupByNamePrefix(entities []Entity) FrequencyTable {
	counts := make(FrequencyTable)

	for _, e := range entities {
		name, ok := e.DisplayName()
		if !ok || name == "" {
			counts[UnnamedLabel]++
			continue
		}
		label, _, _ := strings.Cut(name, ":")
		counts[label]++
	}

	return counts
}
