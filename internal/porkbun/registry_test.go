package porkbun

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domainops/porkbun-adapter/internal/secrets"
)

func TestNewRegistry_AllOperationsPresent(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, 24, r.Len())

	for _, name := range []string{
		OpPing, OpGetPricing,
		OpUpdateNameservers, OpGetNameservers, OpListDomains, OpCheckDomain,
		OpAddURLForward, OpGetURLForwarding, OpDeleteURLForward,
		OpCreateGlueRecord, OpUpdateGlueRecord, OpDeleteGlueRecord, OpGetGlueRecords,
		OpCreateDNSRecord, OpEditDNSRecord, OpEditDNSRecordsByNameType,
		OpDeleteDNSRecord, OpDeleteDNSRecordsByNameType,
		OpRetrieveDNSRecords, OpRetrieveDNSRecordsByNameType,
		OpCreateDNSSECRecord, OpGetDNSSECRecords, OpDeleteDNSSECRecord,
		OpRetrieveSSLBundle,
	} {
		_, ok := r.Lookup(name)
		assert.True(t, ok, "missing descriptor for %q", name)
	}
}

func TestNewRegistry_NamesSortedAndComplete(t *testing.T) {
	r := NewRegistry()

	names := r.Names()
	require.Len(t, names, r.Len())
	assert.IsNonDecreasing(t, names)
}

func TestNewRegistry_NoCredentialFieldDeclared(t *testing.T) {
	for _, d := range descriptors {
		for _, f := range d.Fields {
			assert.NotEqual(t, secrets.WireAPIKey, f.Wire, "operation %s", d.Name)
			assert.NotEqual(t, secrets.WireSecretAPIKey, f.Wire, "operation %s", d.Name)
		}
	}
}

func TestNewRegistry_TemplatesWellFormed(t *testing.T) {
	for _, d := range descriptors {
		require.NotEmpty(t, d.Template, "operation %s", d.Name)
		assert.False(t, strings.HasPrefix(d.Template, "/"), "operation %s: template is relative", d.Name)

		// optional placeholders may only appear as the final segment
		segs := strings.Split(d.Template, "/")
		for i, seg := range segs {
			if strings.HasSuffix(seg, "?}") {
				assert.Equal(t, len(segs)-1, i, "operation %s: optional segment must be trailing", d.Name)
			}
		}
	}
}

func TestLookup_UnknownOperation(t *testing.T) {
	_, ok := NewRegistry().Lookup("transfer_domain")
	assert.False(t, ok)
}
