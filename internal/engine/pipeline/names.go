package pipeline

import (
	"errors"

	"go.trai.ch/assetpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// CheckNames fails when two assets derive the same constant name, e.g. a-b.js and a_b.js.
func CheckNames(assets []domain.SourceAsset) error {
	owners := make(map[string]string, len(assets))
	for _, asset := range assets {
		name := asset.ConstantName()
		if first, ok := owners[name]; ok {
			err := zerr.With(zerr.New(first+" and "+asset.Path+" both map to "+name), "constant", name)
			err = zerr.With(err, "first", first)
			return errors.Join(domain.ErrConstantNameCollision, zerr.With(err, "second", asset.Path))
		}
		owners[name] = asset.Path
	}
	return nil
}
