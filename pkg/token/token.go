package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid session token")

// Identity is the request-scoped identity decoded from a session token.
type Identity struct {
	ID   string
	Name string
	Role string
}

// Manager signs and verifies HS256 session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) Sign(identity Identity) (string, error) {
	claims := jwt.MapClaims{
		"employee_id": identity.ID,
		"name":        identity.Name,
		"role":        identity.Role,
		"exp":         time.Now().Add(m.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *Manager) Parse(raw string) (Identity, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	id, _ := claims["employee_id"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)
	if id == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{ID: id, Name: name, Role: role}, nil
}
