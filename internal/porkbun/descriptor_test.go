package porkbun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLookup(t *testing.T, name string) Descriptor {
	t.Helper()
	d, ok := NewRegistry().Lookup(name)
	require.True(t, ok, "operation %q must be registered", name)
	return d
}

// ─── Endpoint resolution ─────────────────────────────────────────────────────

func TestResolveEndpoint_SubstitutesAllPlaceholders(t *testing.T) {
	d := mustLookup(t, OpDeleteDNSRecord) // dns/delete/{domain}/{id}

	endpoint, err := d.ResolveEndpoint(map[string]string{"domain": "example.com", "id": "106926659"})
	require.NoError(t, err)
	assert.Equal(t, "dns/delete/example.com/106926659", endpoint)
}

func TestResolveEndpoint_MissingRequiredParam(t *testing.T) {
	d := mustLookup(t, OpDeleteDNSRecord)

	_, err := d.ResolveEndpoint(map[string]string{"domain": "example.com"})
	require.Error(t, err)
	assert.True(t, IsKind(err, KindMalformedOperation))
	assert.Contains(t, err.Error(), `"id"`)
}

func TestResolveEndpoint_EmptyRequiredParamFails(t *testing.T) {
	d := mustLookup(t, OpGetNameservers)

	_, err := d.ResolveEndpoint(map[string]string{"domain": ""})
	assert.True(t, IsKind(err, KindMalformedOperation))
}

func TestResolveEndpoint_OptionalTrailingSegmentDropped(t *testing.T) {
	d := mustLookup(t, OpRetrieveDNSRecords) // dns/retrieve/{domain}/{id?}

	endpoint, err := d.ResolveEndpoint(map[string]string{"domain": "example.com"})
	require.NoError(t, err)
	assert.Equal(t, "dns/retrieve/example.com", endpoint)

	endpoint, err = d.ResolveEndpoint(map[string]string{"domain": "example.com", "id": "42"})
	require.NoError(t, err)
	assert.Equal(t, "dns/retrieve/example.com/42", endpoint)
}

func TestResolveEndpoint_OptionalSubdomain(t *testing.T) {
	d := mustLookup(t, OpEditDNSRecordsByNameType)

	endpoint, err := d.ResolveEndpoint(map[string]string{"domain": "example.com", "type": "A"})
	require.NoError(t, err)
	assert.Equal(t, "dns/editByNameType/example.com/A", endpoint)

	endpoint, err = d.ResolveEndpoint(map[string]string{"domain": "example.com", "type": "A", "subdomain": "www"})
	require.NoError(t, err)
	assert.Equal(t, "dns/editByNameType/example.com/A/www", endpoint)
}

func TestResolveEndpoint_RawSegmentInsertion(t *testing.T) {
	// Values are inserted literally; the registry does not re-encode them.
	d := mustLookup(t, OpCheckDomain)

	endpoint, err := d.ResolveEndpoint(map[string]string{"domain": "xn--nxasmq6b.com"})
	require.NoError(t, err)
	assert.Equal(t, "domain/checkDomain/xn--nxasmq6b.com", endpoint)
}

// ─── Body building ───────────────────────────────────────────────────────────

func TestBuildBody_DefaultsApplied(t *testing.T) {
	d := mustLookup(t, OpCreateDNSRecord)

	body := d.BuildBody(map[string]any{"recordType": "A", "content": "1.1.1.1"})

	assert.Equal(t, "A", body["type"])
	assert.Equal(t, "1.1.1.1", body["content"])
	assert.Equal(t, "", body["name"], "name always present, defaulting to root")
	assert.Equal(t, "600", body["ttl"], "ttl always present, defaulting to the registrar minimum")
}

func TestBuildBody_TriStateOptionalFields(t *testing.T) {
	d := mustLookup(t, OpEditDNSRecord)

	// omitted: no key at all
	body := d.BuildBody(map[string]any{"recordType": "A", "content": "1.1.1.2"})
	_, hasNotes := body["notes"]
	assert.False(t, hasNotes, "unsupplied notes must be omitted entirely")

	// supplied empty string: key present, empty value
	body = d.BuildBody(map[string]any{"recordType": "A", "content": "1.1.1.2", "notes": ""})
	v, hasNotes := body["notes"]
	assert.True(t, hasNotes, "empty-string notes must be sent")
	assert.Equal(t, "", v)
}

func TestBuildBody_DNSSECDefaultsAlwaysPresent(t *testing.T) {
	d := mustLookup(t, OpCreateDNSSECRecord)

	body := d.BuildBody(map[string]any{"keyTag": "64087", "alg": "13", "digestType": "2", "digest": "15E4"})

	require.Len(t, body, 9, "all nine DNSSEC fields travel on every request")
	assert.Equal(t, "", body["maxSigLife"])
	assert.Equal(t, "", body["keyDataPubKey"])
}

func TestBuildBody_UndeclaredArgsIgnored(t *testing.T) {
	d := mustLookup(t, OpListDomains)

	body := d.BuildBody(map[string]any{"start": "1000", "bogus": "x"})

	assert.Equal(t, "1000", body["start"])
	_, leaked := body["bogus"]
	assert.False(t, leaked, "undeclared fields must never reach the wire")
}
