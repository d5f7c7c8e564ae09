package adapters

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"ums_backend/internal/feature/auth/domain"
	"ums_backend/internal/feature/auth/domain/entity"
)

// credentialFile はYAML資格情報ファイルの構造です。
type credentialFile struct {
	Users []credentialEntry `yaml:"users"`
}

type credentialEntry struct {
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"password_hash"`
	Name         string `yaml:"name"`
}

// LoadCredentialFile はpathのYAMLファイルから資格情報を読み込みます。
func LoadCredentialFile(path string) ([]entity.Credential, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open credentials file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseCredentials(f)
}

// ParseCredentials はrから資格情報のYAMLを読み込みます。
// password_hashが設定されたエントリではpasswordを無視します。
func ParseCredentials(r io.Reader) ([]entity.Credential, error) {
	var doc credentialFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", domain.ErrInvalidCredentialTable)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCredentialTable, err)
	}

	creds := make([]entity.Credential, 0, len(doc.Users))
	for _, u := range doc.Users {
		c := entity.Credential{
			Username:    u.Username,
			DisplayName: u.Name,
		}
		if u.PasswordHash != "" {
			c.PasswordHash = u.PasswordHash
		} else {
			c.Password = u.Password
		}
		creds = append(creds, c)
	}
	return creds, nil
}
