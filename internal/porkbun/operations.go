package porkbun

import (
	"context"
	"strconv"
)

// DNSRecord carries the fields for dns/create and dns/edit. Porkbun treats
// prio and notes as tri-state on edits: nil leaves the value unchanged, an
// empty string clears it.
type DNSRecord struct {
	Type    string  // A, AAAA, CNAME, MX, TXT, NS, SRV, TLSA, CAA, ALIAS, HTTPS, SVCB, SSHFP
	Content string  // record answer: IP address, hostname, text value
	Name    string  // subdomain; empty for root, "*" for wildcard
	TTL     int     // seconds; 0 falls back to the registrar minimum of 600
	Prio    *string // priority for MX/SRV records
	Notes   *string
}

// URLForward configures an HTTP redirect for a domain or subdomain.
type URLForward struct {
	Location    string // target URL
	Type        string // "temporary" (302) or "permanent" (301); empty defaults to temporary
	Subdomain   string // empty for the root domain
	IncludePath string // "yes" or "no"
	Wildcard    string // "yes" or "no"
}

// DNSSECRecord carries DS data (and optional key data) for the registry.
// All values travel as strings, matching the registrar's wire format.
type DNSSECRecord struct {
	KeyTag     string
	Alg        string
	DigestType string
	Digest     string

	MaxSigLife      string
	KeyDataFlags    string
	KeyDataProtocol string
	KeyDataAlgo     string
	KeyDataPubKey   string
}

// Ping tests API connectivity and authentication; the response carries the
// caller's public IP.
func (c *Client) Ping(ctx context.Context) (Result, error) {
	return c.Invoke(ctx, OpPing, nil, nil)
}

// GetPricing returns registration, renewal, and transfer pricing for all
// supported TLDs.
func (c *Client) GetPricing(ctx context.Context) (Result, error) {
	return c.Invoke(ctx, OpGetPricing, nil, nil)
}

// UpdateNameservers replaces the authoritative name servers for a domain.
func (c *Client) UpdateNameservers(ctx context.Context, domain string, nameservers []string) (Result, error) {
	return c.Invoke(ctx, OpUpdateNameservers,
		map[string]string{"domain": domain},
		map[string]any{"nameservers": nameservers})
}

// GetNameservers returns the authoritative name servers for a domain.
func (c *Client) GetNameservers(ctx context.Context, domain string) (Result, error) {
	return c.Invoke(ctx, OpGetNameservers, map[string]string{"domain": domain}, nil)
}

// ListDomains lists account domains in chunks of 1000 starting at start.
func (c *Client) ListDomains(ctx context.Context, start int, includeLabels bool) (Result, error) {
	args := map[string]any{"start": strconv.Itoa(start)}
	if includeLabels {
		args["includeLabels"] = "yes"
	}
	return c.Invoke(ctx, OpListDomains, nil, args)
}

// CheckDomain checks availability and pricing for a domain. Rate limited by
// the registrar.
func (c *Client) CheckDomain(ctx context.Context, domain string) (Result, error) {
	return c.Invoke(ctx, OpCheckDomain, map[string]string{"domain": domain}, nil)
}

// AddURLForward creates a URL forwarding rule for a domain.
func (c *Client) AddURLForward(ctx context.Context, domain string, f URLForward) (Result, error) {
	args := map[string]any{
		"subdomain": f.Subdomain,
		"location":  f.Location,
	}
	if f.Type != "" {
		args["forwardType"] = f.Type
	}
	if f.IncludePath != "" {
		args["includePath"] = f.IncludePath
	}
	if f.Wildcard != "" {
		args["wildcard"] = f.Wildcard
	}
	return c.Invoke(ctx, OpAddURLForward, map[string]string{"domain": domain}, args)
}

// GetURLForwarding returns all URL forwarding rules for a domain.
func (c *Client) GetURLForwarding(ctx context.Context, domain string) (Result, error) {
	return c.Invoke(ctx, OpGetURLForwarding, map[string]string{"domain": domain}, nil)
}

// DeleteURLForward removes one URL forwarding rule by record id.
func (c *Client) DeleteURLForward(ctx context.Context, domain, recordID string) (Result, error) {
	return c.Invoke(ctx, OpDeleteURLForward, map[string]string{"domain": domain, "id": recordID}, nil)
}

// CreateGlueRecord registers glue host IPs for a nameserver subdomain.
func (c *Client) CreateGlueRecord(ctx context.Context, domain, glueHost string, ips []string) (Result, error) {
	return c.Invoke(ctx, OpCreateGlueRecord,
		map[string]string{"domain": domain, "glueHost": glueHost},
		map[string]any{"ips": ips})
}

// UpdateGlueRecord replaces the IPs of an existing glue record.
func (c *Client) UpdateGlueRecord(ctx context.Context, domain, glueHost string, ips []string) (Result, error) {
	return c.Invoke(ctx, OpUpdateGlueRecord,
		map[string]string{"domain": domain, "glueHost": glueHost},
		map[string]any{"ips": ips})
}

// DeleteGlueRecord removes the glue record for a glue host.
func (c *Client) DeleteGlueRecord(ctx context.Context, domain, glueHost string) (Result, error) {
	return c.Invoke(ctx, OpDeleteGlueRecord, map[string]string{"domain": domain, "glueHost": glueHost}, nil)
}

// GetGlueRecords returns all glue records for a domain.
func (c *Client) GetGlueRecords(ctx context.Context, domain string) (Result, error) {
	return c.Invoke(ctx, OpGetGlueRecords, map[string]string{"domain": domain}, nil)
}

// CreateDNSRecord creates a DNS record and returns the new record id.
func (c *Client) CreateDNSRecord(ctx context.Context, domain string, rec DNSRecord) (Result, error) {
	return c.Invoke(ctx, OpCreateDNSRecord, map[string]string{"domain": domain}, dnsRecordArgs(rec))
}

// EditDNSRecord updates an existing DNS record by id.
func (c *Client) EditDNSRecord(ctx context.Context, domain, recordID string, rec DNSRecord) (Result, error) {
	return c.Invoke(ctx, OpEditDNSRecord, map[string]string{"domain": domain, "id": recordID}, dnsRecordArgs(rec))
}

// EditDNSRecordsByNameType updates every record matching subdomain and type.
func (c *Client) EditDNSRecordsByNameType(ctx context.Context, domain, recordType, subdomain string, rec DNSRecord) (Result, error) {
	args := map[string]any{
		"content": rec.Content,
		"ttl":     ttlString(rec.TTL),
	}
	if rec.Prio != nil {
		args["prio"] = *rec.Prio
	}
	if rec.Notes != nil {
		args["notes"] = *rec.Notes
	}
	return c.Invoke(ctx, OpEditDNSRecordsByNameType,
		map[string]string{"domain": domain, "type": recordType, "subdomain": subdomain}, args)
}

// DeleteDNSRecord removes a DNS record by id.
func (c *Client) DeleteDNSRecord(ctx context.Context, domain, recordID string) (Result, error) {
	return c.Invoke(ctx, OpDeleteDNSRecord, map[string]string{"domain": domain, "id": recordID}, nil)
}

// DeleteDNSRecordsByNameType removes every record matching subdomain and type.
func (c *Client) DeleteDNSRecordsByNameType(ctx context.Context, domain, recordType, subdomain string) (Result, error) {
	return c.Invoke(ctx, OpDeleteDNSRecordsByNameType,
		map[string]string{"domain": domain, "type": recordType, "subdomain": subdomain}, nil)
}

// RetrieveDNSRecords returns all DNS records for a domain, or one record
// when recordID is non-empty.
func (c *Client) RetrieveDNSRecords(ctx context.Context, domain, recordID string) (Result, error) {
	return c.Invoke(ctx, OpRetrieveDNSRecords, map[string]string{"domain": domain, "id": recordID}, nil)
}

// RetrieveDNSRecordsByNameType returns records matching subdomain and type.
func (c *Client) RetrieveDNSRecordsByNameType(ctx context.Context, domain, recordType, subdomain string) (Result, error) {
	return c.Invoke(ctx, OpRetrieveDNSRecordsByNameType,
		map[string]string{"domain": domain, "type": recordType, "subdomain": subdomain}, nil)
}

// CreateDNSSECRecord creates a DNSSEC record at the registry.
func (c *Client) CreateDNSSECRecord(ctx context.Context, domain string, ds DNSSECRecord) (Result, error) {
	return c.Invoke(ctx, OpCreateDNSSECRecord, map[string]string{"domain": domain}, map[string]any{
		"keyTag":          ds.KeyTag,
		"alg":             ds.Alg,
		"digestType":      ds.DigestType,
		"digest":          ds.Digest,
		"maxSigLife":      ds.MaxSigLife,
		"keyDataFlags":    ds.KeyDataFlags,
		"keyDataProtocol": ds.KeyDataProtocol,
		"keyDataAlgo":     ds.KeyDataAlgo,
		"keyDataPubKey":   ds.KeyDataPubKey,
	})
}

// GetDNSSECRecords returns the DNSSEC records the registry holds for a domain.
func (c *Client) GetDNSSECRecords(ctx context.Context, domain string) (Result, error) {
	return c.Invoke(ctx, OpGetDNSSECRecords, map[string]string{"domain": domain}, nil)
}

// DeleteDNSSECRecord removes a DNSSEC record by key tag. Most registries
// delete all records with matching data, not just the matching key tag.
func (c *Client) DeleteDNSSECRecord(ctx context.Context, domain, keyTag string) (Result, error) {
	return c.Invoke(ctx, OpDeleteDNSSECRecord, map[string]string{"domain": domain, "keyTag": keyTag}, nil)
}

// RetrieveSSLBundle returns the SSL certificate bundle (chain, private key,
// public key) for a domain.
func (c *Client) RetrieveSSLBundle(ctx context.Context, domain string) (Result, error) {
	return c.Invoke(ctx, OpRetrieveSSLBundle, map[string]string{"domain": domain}, nil)
}

func dnsRecordArgs(rec DNSRecord) map[string]any {
	args := map[string]any{
		"name":       rec.Name,
		"recordType": rec.Type,
		"content":    rec.Content,
		"ttl":        ttlString(rec.TTL),
	}
	if rec.Prio != nil {
		args["prio"] = *rec.Prio
	}
	if rec.Notes != nil {
		args["notes"] = *rec.Notes
	}
	return args
}

// ttlString renders a TTL the way the registrar wants it: a string, with the
// registrar minimum as the default.
func ttlString(ttl int) string {
	if ttl <= 0 {
		return "600"
	}
	return strconv.Itoa(ttl)
}
