package generator

import (
	"staygen/internal/config"
	"staygen/internal/identity"
	"staygen/internal/model"
)

// TenantGenerator produces the guest dimension with the same unique-identity
// discipline as owners, minus categorization.
type TenantGenerator struct {
	cfg *config.Config
	ids *identity.Issuer
}

func NewTenantGenerator(cfg *config.Config, ids *identity.Issuer) *TenantGenerator {
	return &TenantGenerator{cfg: cfg, ids: ids}
}

func (g *TenantGenerator) Generate() []model.Tenant {
	tenants := make([]model.Tenant, 0, g.cfg.NumTenants)
	for i := 0; i < g.cfg.NumTenants; i++ {
		contact := g.ids.NextContact()
		tenants = append(tenants, model.Tenant{
			TenantID: i + 1,
			Name:     contact.Name,
			Email:    contact.Email,
			Phone:    contact.Phone,
		})
	}
	return tenants
}
