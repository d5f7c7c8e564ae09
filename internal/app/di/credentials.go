package di

import (
	"log/slog"

	"ums_backend/internal/feature/auth/adapters"
	"ums_backend/internal/feature/auth/domain/entity"
	"ums_backend/internal/feature/auth/usecase"
)

// NewCredentialStore creates the CredentialStore used by login.
// An empty path selects the built-in table; otherwise the YAML file at path is loaded.
func NewCredentialStore(path string) (usecase.CredentialStore, error) {
	creds := adapters.DefaultCredentials()
	source := "built-in"
	if path != "" {
		loaded, err := adapters.LoadCredentialFile(path)
		if err != nil {
			return nil, err
		}
		creds = loaded
		source = path
	}

	store, err := adapters.NewMemoryCredentialStore(creds)
	if err != nil {
		return nil, err
	}
	slog.Info("credential table loaded", "source", source, "entries", store.Len(), "hashed", countHashed(creds))
	return store, nil
}

func countHashed(creds []entity.Credential) int {
	n := 0
	for _, c := range creds {
		if c.IsHashed() {
			n++
		}
	}
	return n
}
