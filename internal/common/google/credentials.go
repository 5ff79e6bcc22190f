// Package google wraps the Google Workspace APIs the intake pipeline writes to.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/sheets/v4"
)

// Scopes granted to the delegated service account.
var Scopes = []string{
	sheets.SpreadsheetsScope,
	gmail.GmailSendScope,
}

// CredentialSource locates the service account key. Inline JSON wins over the
// file path.
type CredentialSource struct {
	JSON     string
	JSONPath string
}

type serviceAccountKey struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// Read returns the raw key material.
func (c CredentialSource) Read() ([]byte, error) {
	if c.JSON != "" {
		return []byte(c.JSON), nil
	}
	if c.JSONPath == "" {
		return nil, fmt.Errorf("missing GOOGLE_SERVICE_ACCOUNT_JSON or GOOGLE_SERVICE_ACCOUNT_JSON_PATH")
	}
	data, err := os.ReadFile(c.JSONPath)
	if err != nil {
		return nil, fmt.Errorf("read service account file: %w", err)
	}
	return data, nil
}

// DelegatedClient builds an HTTP client that acts as subject through
// domain-wide delegation, scoped to spreadsheet writes and mail send.
func (c CredentialSource) DelegatedClient(ctx context.Context, subject string) (*http.Client, error) {
	data, err := c.Read()
	if err != nil {
		return nil, err
	}

	var key serviceAccountKey
	if err := json.Unmarshal(data, &key); err != nil {
		return nil, fmt.Errorf("invalid service account JSON: %w", err)
	}
	if key.ClientEmail == "" || key.PrivateKey == "" {
		return nil, fmt.Errorf("invalid service account JSON: client_email and private_key are required")
	}

	jwtCfg, err := googleoauth.JWTConfigFromJSON(data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("parse service account JSON: %w", err)
	}
	jwtCfg.Subject = subject

	return oauth2.NewClient(ctx, jwtCfg.TokenSource(ctx)), nil
}
