package secrets

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/domainops/porkbun-adapter/internal/config"
)

type stubProvider struct {
	secrets map[string]map[string]string
	err     error
}

func (s *stubProvider) GetSecret(_ context.Context, key string) (map[string]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	m, ok := s.secrets[key]
	if !ok {
		return nil, fmt.Errorf("secret %q not found", key)
	}
	return m, nil
}

func TestLoad_FromEnvConfig(t *testing.T) {
	cfg := &config.Config{APIKey: "pk1_envenvenvenvenv", SecretAPIKey: "sk1_envenvenvenvenv"}

	creds, err := Load(context.Background(), zap.NewNop(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "pk1_envenvenvenvenv", creds.APIKey)
	assert.Equal(t, "sk1_envenvenvenvenv", creds.SecretAPIKey)
}

func TestLoad_FallsBackToSecretsManager(t *testing.T) {
	cfg := &config.Config{SecretName: "prod/porkbun"}
	provider := &stubProvider{secrets: map[string]map[string]string{
		"prod/porkbun": {
			WireAPIKey:       "pk1_fromsecretsmanager",
			WireSecretAPIKey: "sk1_fromsecretsmanager",
		},
	}}

	creds, err := Load(context.Background(), zap.NewNop(), cfg, provider)
	require.NoError(t, err)
	assert.Equal(t, "pk1_fromsecretsmanager", creds.APIKey)
	assert.Equal(t, "sk1_fromsecretsmanager", creds.SecretAPIKey)
}

func TestLoad_EnvWinsOverSecret(t *testing.T) {
	cfg := &config.Config{APIKey: "pk1_envenvenvenvenv", SecretName: "prod/porkbun"}
	provider := &stubProvider{secrets: map[string]map[string]string{
		"prod/porkbun": {
			WireAPIKey:       "pk1_fromsecretsmanager",
			WireSecretAPIKey: "sk1_fromsecretsmanager",
		},
	}}

	creds, err := Load(context.Background(), zap.NewNop(), cfg, provider)
	require.NoError(t, err)
	assert.Equal(t, "pk1_envenvenvenvenv", creds.APIKey, "env-sourced key takes precedence")
	assert.Equal(t, "sk1_fromsecretsmanager", creds.SecretAPIKey)
}

func TestLoad_MissingCredentials(t *testing.T) {
	_, err := Load(context.Background(), zap.NewNop(), &config.Config{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORKBUN_API_KEY")
}

func TestAuthPayload_ExactlyTwoFields(t *testing.T) {
	creds := Credentials{APIKey: "pk", SecretAPIKey: "sk"}
	payload := creds.AuthPayload()

	require.Len(t, payload, 2)
	assert.Equal(t, "pk", payload[WireAPIKey])
	assert.Equal(t, "sk", payload[WireSecretAPIKey])
}

func TestString_MasksKeyMaterial(t *testing.T) {
	creds := Credentials{APIKey: "pk1_aaaabbbbccccdddd", SecretAPIKey: "sk1_eeeeffffgggghhhh"}
	s := creds.String()

	assert.NotContains(t, s, "bbbbcccc")
	assert.NotContains(t, s, "ffffgggg")
	assert.Contains(t, s, "pk1_aaaa")
}
