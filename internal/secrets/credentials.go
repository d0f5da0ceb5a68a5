package secrets

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/domainops/porkbun-adapter/internal/config"
	pkgsecrets "github.com/domainops/porkbun-adapter/pkg/secrets"
	"github.com/domainops/porkbun-adapter/pkg/utils"
)

// Wire field names the registrar expects on every request body.
const (
	WireAPIKey       = "apikey"
	WireSecretAPIKey = "secretapikey"
)

// Credentials is the process-scoped API key pair. It is constructed exactly
// once at startup and never mutated; every outbound request body carries it.
type Credentials struct {
	APIKey       string
	SecretAPIKey string
}

// Load resolves the credential pair, preferring environment configuration and
// falling back to the configured Secrets Manager secret. provider may be nil
// when no secret name is configured.
func Load(ctx context.Context, logger *zap.Logger, cfg *config.Config, provider pkgsecrets.Provider) (Credentials, error) {
	creds := Credentials{APIKey: cfg.APIKey, SecretAPIKey: cfg.SecretAPIKey}

	if (creds.APIKey == "" || creds.SecretAPIKey == "") && cfg.SecretName != "" {
		if provider == nil {
			return Credentials{}, fmt.Errorf("secret %q configured but no secrets provider available", cfg.SecretName)
		}
		secret, err := provider.GetSecret(ctx, cfg.SecretName)
		if err != nil {
			return Credentials{}, fmt.Errorf("load credentials from secret %q: %w", cfg.SecretName, err)
		}
		if creds.APIKey == "" {
			creds.APIKey = secret[WireAPIKey]
		}
		if creds.SecretAPIKey == "" {
			creds.SecretAPIKey = secret[WireSecretAPIKey]
		}
	}

	if creds.APIKey == "" || creds.SecretAPIKey == "" {
		return Credentials{}, fmt.Errorf("missing Porkbun credentials: set PORKBUN_API_KEY and PORKBUN_SECRET_API_KEY or PORKBUN_SECRET_NAME")
	}

	logger.Info("porkbun.credentials_loaded",
		zap.String("api_key", utils.MaskSecret(creds.APIKey)),
		zap.String("secret_api_key", utils.MaskSecret(creds.SecretAPIKey)))

	return creds, nil
}

// AuthPayload returns the two wire fields merged into every request body.
func (c Credentials) AuthPayload() map[string]any {
	return map[string]any{
		WireAPIKey:       c.APIKey,
		WireSecretAPIKey: c.SecretAPIKey,
	}
}

// String implements fmt.Stringer with masked key material so accidental
// formatting of a Credentials value never leaks the pair.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{apikey: %s, secretapikey: %s}",
		utils.MaskSecret(c.APIKey), utils.MaskSecret(c.SecretAPIKey))
}
