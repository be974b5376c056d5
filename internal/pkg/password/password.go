package password

import "golang.org/x/crypto/bcrypt"

// Hasher wraps bcrypt with a configurable work factor. The salt is generated
// per call and embedded in the digest; comparison is constant time inside
// bcrypt.CompareHashAndPassword.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher. cost <= 0 selects bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h *Hasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
