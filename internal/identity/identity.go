package identity

import "github.com/brianvoe/gofakeit/v6"

// Contact is a synthetic person identity.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// Issuer hands out synthetic contact identities with run-wide unique emails.
// Owners and tenants share one issuer so the collision check spans both
// populations.
type Issuer struct {
	faker *gofakeit.Faker
	seen  map[string]struct{}
}

func NewIssuer(seed int64) *Issuer {
	return &Issuer{
		faker: gofakeit.New(seed),
		seen:  make(map[string]struct{}),
	}
}

// NextContact returns a fresh identity, re-drawing the email until it has
// never been issued before in this run.
func (i *Issuer) NextContact() Contact {
	email := i.faker.Email()
	for {
		if _, dup := i.seen[email]; !dup {
			break
		}
		email = i.faker.Email()
	}
	i.seen[email] = struct{}{}
	return Contact{
		Name:  i.faker.Name(),
		Email: email,
		Phone: i.faker.Phone(),
	}
}

// City returns a synthetic city name. Uniqueness is not enforced; city pools
// may repeat.
func (i *Issuer) City() string {
	return i.faker.City()
}
