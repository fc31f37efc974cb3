package ports

import (
	"context"

	"ifcdash/domain/model"
)

// KindProduct is the entity kind selecting every physical product entity.
const KindProduct = "IfcProduct"

// Model is an open handle to a parsed building model.
type Model interface {
	// EntitiesOf returns all entities of the given kind in file order.
	// Kind "IfcProduct" selects every physical product entity.
	EntitiesOf(kind string) []model.Entity

	// Close releases any resources held by the parse.
	Close() error
}

// ModelParser opens a building-model file and exposes its entities. A failure
// to open or read the file is a hard ParseFailure; there is no partial result.
type ModelParser interface {
	Open(ctx context.Context, path string) (Model, error)
}
