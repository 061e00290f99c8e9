package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"insightdeck/internal/users/models"
)

// SeedUsers returns the three built-in prototype accounts. All state is lost
// on process restart, so these are recreated on every start.
func SeedUsers() []models.User {
	return []models.User{
		{ID: "u-admin", Name: "Avery Admin", Email: "admin@test.com", Role: models.RoleAdmin, Password: "password"},
		{ID: "u-analyst", Name: "Nina Analyst", Email: "analyst@test.com", Role: models.RoleAnalyst, Password: "password"},
		{ID: "u-viewer", Name: "Victor Viewer", Email: "viewer@test.com", Role: models.RoleViewer, Password: "password"},
	}
}

type seedFile struct {
	Users []models.User `yaml:"users"`
}

// LoadSeedFile reads a YAML account seed, replacing the built-in accounts.
// The file shape is {users: [{id, name, email, role, password}, ...]}.
func LoadSeedFile(path string) ([]models.User, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var parsed seedFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	if len(parsed.Users) == 0 {
		return nil, fmt.Errorf("seed file %s contains no users", path)
	}
	for i, u := range parsed.Users {
		if u.ID == "" || u.Email == "" || u.Password == "" {
			return nil, fmt.Errorf("seed user %d missing id, email, or password", i)
		}
		if !u.Role.Valid() {
			return nil, fmt.Errorf("seed user %s has unknown role %q", u.ID, u.Role)
		}
	}
	return parsed.Users, nil
}
