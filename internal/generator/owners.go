package generator

import (
	"staygen/internal/config"
	"staygen/internal/identity"
	"staygen/internal/model"
)

// OwnerGenerator produces the owner dimension, partitioned into ownership
// categories by the configured shares.
type OwnerGenerator struct {
	cfg *config.Config
	ids *identity.Issuer
}

func NewOwnerGenerator(cfg *config.Config, ids *identity.Issuer) *OwnerGenerator {
	return &OwnerGenerator{cfg: cfg, ids: ids}
}

// Generate builds the owner population. Category counts always sum exactly
// to the configured owner total; the share-rounding remainder lands in the
// default category.
func (g *OwnerGenerator) Generate() ([]model.Owner, error) {
	counts, err := config.NormalizeCategoryCounts(g.cfg.NumOwners, g.cfg.OwnerCategories, g.cfg.DefaultCategory)
	if err != nil {
		return nil, err
	}

	owners := make([]model.Owner, 0, g.cfg.NumOwners)
	id := 1
	for _, cat := range g.cfg.OwnerCategories {
		for i := 0; i < counts[cat.Name]; i++ {
			contact := g.ids.NextContact()
			owners = append(owners, model.Owner{
				OwnerID:  id,
				Name:     contact.Name,
				Email:    contact.Email,
				Phone:    contact.Phone,
				Category: cat.Name,
			})
			id++
		}
	}
	return owners, nil
}
