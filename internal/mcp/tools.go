package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/domainops/porkbun-adapter/internal/porkbun"
)

// ─── Tool inputs ─────────────────────────────────────────────────────────────

type emptyInput struct{}

type domainInput struct {
	Domain string `json:"domain" jsonschema:"domain name, e.g. example.com"`
}

type updateNameserversInput struct {
	Domain      string   `json:"domain" jsonschema:"domain name"`
	Nameservers []string `json:"nameservers" jsonschema:"complete list of authoritative name servers"`
}

type listDomainsInput struct {
	Start         int  `json:"start,omitempty" jsonschema:"pagination offset, increments of 1000"`
	IncludeLabels bool `json:"include_labels,omitempty" jsonschema:"include label data for each domain"`
}

type addURLForwardInput struct {
	Domain      string `json:"domain" jsonschema:"domain name"`
	Location    string `json:"location" jsonschema:"destination URL"`
	ForwardType string `json:"forward_type,omitempty" jsonschema:"temporary or permanent, default temporary"`
	Subdomain   string `json:"subdomain,omitempty" jsonschema:"subdomain to forward, empty for the root domain"`
	IncludePath string `json:"include_path,omitempty" jsonschema:"yes to append the request path, default no"`
	Wildcard    string `json:"wildcard,omitempty" jsonschema:"yes to forward all subdomains, default no"`
}

type deleteURLForwardInput struct {
	Domain   string `json:"domain" jsonschema:"domain name"`
	RecordID string `json:"record_id" jsonschema:"URL forward record id"`
}

type glueRecordInput struct {
	Domain   string   `json:"domain" jsonschema:"domain name"`
	GlueHost string   `json:"glue_host" jsonschema:"glue host subdomain, e.g. ns1"`
	IPs      []string `json:"ips" jsonschema:"IPv4 and IPv6 addresses for the glue host"`
}

type deleteGlueRecordInput struct {
	Domain   string `json:"domain" jsonschema:"domain name"`
	GlueHost string `json:"glue_host" jsonschema:"glue host subdomain"`
}

type createDNSRecordInput struct {
	Domain     string  `json:"domain" jsonschema:"domain name"`
	RecordType string  `json:"record_type" jsonschema:"record type: A, AAAA, CNAME, MX, TXT, NS, SRV, TLSA, CAA, ALIAS, HTTPS, SVCB, SSHFP"`
	Content    string  `json:"content" jsonschema:"record answer, e.g. an IP address"`
	Name       string  `json:"name,omitempty" jsonschema:"subdomain, empty for root, * for wildcard"`
	TTL        int     `json:"ttl,omitempty" jsonschema:"time to live in seconds, minimum and default 600"`
	Prio       *string `json:"prio,omitempty" jsonschema:"priority for MX and SRV records"`
	Notes      *string `json:"notes,omitempty" jsonschema:"free-form note attached to the record"`
}

type editDNSRecordInput struct {
	Domain     string  `json:"domain" jsonschema:"domain name"`
	RecordID   string  `json:"record_id" jsonschema:"DNS record id"`
	RecordType string  `json:"record_type" jsonschema:"record type"`
	Content    string  `json:"content" jsonschema:"record answer"`
	Name       string  `json:"name,omitempty" jsonschema:"subdomain, empty for root"`
	TTL        int     `json:"ttl,omitempty" jsonschema:"time to live in seconds"`
	Prio       *string `json:"prio,omitempty" jsonschema:"priority; omit to keep, empty string to clear"`
	Notes      *string `json:"notes,omitempty" jsonschema:"note; omit to keep, empty string to clear"`
}

type editByNameTypeInput struct {
	Domain     string  `json:"domain" jsonschema:"domain name"`
	RecordType string  `json:"record_type" jsonschema:"record type to match"`
	Subdomain  string  `json:"subdomain,omitempty" jsonschema:"subdomain to match, empty for root"`
	Content    string  `json:"content" jsonschema:"new record answer"`
	TTL        int     `json:"ttl,omitempty" jsonschema:"time to live in seconds"`
	Prio       *string `json:"prio,omitempty" jsonschema:"priority; omit to keep, empty string to clear"`
	Notes      *string `json:"notes,omitempty" jsonschema:"note; omit to keep, empty string to clear"`
}

type dnsRecordIDInput struct {
	Domain   string `json:"domain" jsonschema:"domain name"`
	RecordID string `json:"record_id" jsonschema:"DNS record id"`
}

type dnsByNameTypeInput struct {
	Domain     string `json:"domain" jsonschema:"domain name"`
	RecordType string `json:"record_type" jsonschema:"record type to match"`
	Subdomain  string `json:"subdomain,omitempty" jsonschema:"subdomain to match, empty for root"`
}

type retrieveDNSRecordsInput struct {
	Domain   string `json:"domain" jsonschema:"domain name"`
	RecordID string `json:"record_id,omitempty" jsonschema:"single record id, empty for all records"`
}

type createDNSSECInput struct {
	Domain          string `json:"domain" jsonschema:"domain name"`
	KeyTag          string `json:"key_tag" jsonschema:"DS key tag"`
	Alg             string `json:"alg" jsonschema:"DS algorithm number"`
	DigestType      string `json:"digest_type" jsonschema:"DS digest type number"`
	Digest          string `json:"digest" jsonschema:"DS digest"`
	MaxSigLife      string `json:"max_sig_life,omitempty" jsonschema:"maximum signature lifetime"`
	KeyDataFlags    string `json:"key_data_flags,omitempty" jsonschema:"DNSKEY flags"`
	KeyDataProtocol string `json:"key_data_protocol,omitempty" jsonschema:"DNSKEY protocol"`
	KeyDataAlgo     string `json:"key_data_algo,omitempty" jsonschema:"DNSKEY algorithm"`
	KeyDataPubKey   string `json:"key_data_pub_key,omitempty" jsonschema:"DNSKEY public key"`
}

type deleteDNSSECInput struct {
	Domain string `json:"domain" jsonschema:"domain name"`
	KeyTag string `json:"key_tag" jsonschema:"key tag of the record to delete"`
}

// ─── Registration ────────────────────────────────────────────────────────────

func registerTools(server *mcp.Server, client *porkbun.Client) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "porkbun_ping",
		Description: "Tests API connectivity and authentication, returns your public IP",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, porkbun.Result, error) {
		res, err := client.Ping(ctx)
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "porkbun_get_pricing",
		Description: "Returns registration, renewal, and transfer pricing for all supported TLDs",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, porkbun.Result, error) {
		res, err := client.GetPricing(ctx)
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "porkbun_update_nameservers",
		Description: "Replaces the authoritative name servers for a domain",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in updateNameserversInput) (*mcp.CallToolResult, porkbun.Result, error) {
		res, err := client.UpdateNameservers(ctx, in.Domain, in.Nameservers)
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "porkbun_get_nameservers",
		Description: "Returns the authoritative name servers for a domain",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in domainInput) (*mcp.CallToolResult, porkbun.Result, error) {
		res, err := client.GetNameservers(ctx, in.Domain)
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "porkbun_list_domains",
		Description: "Lists all domains in the account, paginated in chunks of 1000",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in listDomainsInput) (*mcp.CallToolResult, porkbun.Result, error) {
		res, err := client.ListDomains(ctx, in.Start, in.IncludeLabels)
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "porkbun_check_domain",
		Description: "Checks availability and pricing for a domain (rate limited upstream)",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in domainInput) (*mcp.CallToolResult, porkbun.Result, error) {
		res, err := client.CheckDomain(ctx, in.Domain)
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "porkbun_add_url_forward",
		Description: "Creates a URL forwarding rule for a domain or subdomain",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in addURLForwardInput) (*mcp.CallToolResult, porkbun.Result, error) {
		res, err := client.AddURLForward(ctx, in.Domain, porkbun.URLForward{
			Location:    in.Location,
			Type:        in.ForwardType,
			Subdomain:   in.Subdomain,
			IncludePath: in.IncludePath,
			Wildcard:    in.Wildcard,
		})
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "porkbun_get_url_forwarding",
		Description: "Returns all URL forwarding rules for a domain",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in domainInput) (*mcp.CallToolResult, porkbun.Result, error) {
		res, err := client.GetURLForwarding(ctx, in.Domain)
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "porkbun_delete_url_forward",
		Description: "Deletes one URL forwarding rule by record id",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in deleteURLForwardInput) (*mcp.CallToolResult, porkbun.Result, error) {
		res, err := client.DeleteURLForward(ctx, in.Domain, in.RecordID)
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "porkbun_create_glue_record",
		Description: "Registers glue host IPs for a nameserver subdomain",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in glueRecordInput) (*mcp.CallToolResult, porkbun.Result, error) {
		res, err := client.CreateGlueRecord(ctx, in.Domain, in.GlueHost, in.IPs)
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "porkbun_update_glue_record",
		Description: "Replaces the IPs of an existing glue record",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in glueRecordInput) (*mcp.CallToolResult, porkbun.Result, error) {
		res, err := client.UpdateGlueRecord(ctx, in.Domain, in.GlueHost, in.IPs)
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "porkbun_delete_glue_record",
		Description: "Deletes the glue record for a glue host",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in deleteGlueRecordInput) (*mcp.CallToolResult, porkbun.Result, error) {
		res, err := client.DeleteGlueRecord(ctx, in.Domain, in.GlueHost)
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "porkbun_get_glue_records",
		Description: "Returns all glue records for a domain",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in domainInput) (*mcp.CallToolResult, porkbun.Result, error) {
		res, err := client.GetGlueRecords(ctx, in.Domain)
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "porkbun_create_dns_record",
		Description: "Creates a DNS record and returns the new record id",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in createDNSRecordInput) (*mcp.CallToolResult, porkbun.Result, error) {
		res, err := client.CreateDNSRecord(ctx, in.Domain, porkbun.DNSRecord{
			Type:    in.RecordType,
			Content: in.Content,
			Name:    in.Name,
			TTL:     in.TTL,
			Prio:    in.Prio,
			Notes:   in.Notes,
		})
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "porkbun_edit_dns_record",
		Description: "Edits an existing DNS record by id",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in editDNSRecordInput) (*mcp.CallToolResult, porkbun.Result, error) {
		res, err := client.EditDNSRecord(ctx, in.Domain, in.RecordID, porkbun.DNSRecord{
			Type:    in.RecordType,
			Content: in.Content,
			Name:    in.Name,
			TTL:     in.TTL,
			Prio:    in.Prio,
			Notes:   in.Notes,
		})
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "porkbun_edit_dns_records_by_name_type",
		Description: "Edits all DNS records matching a subdomain and record type",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in editByNameTypeInput) (*mcp.CallToolResult, porkbun.Result, error) {
		res, err := client.EditDNSRecordsByNameType(ctx, in.Domain, in.RecordType, in.Subdomain, porkbun.DNSRecord{
			Content: in.Content,
			TTL:     in.TTL,
			Prio:    in.Prio,
			Notes:   in.Notes,
		})
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "porkbun_delete_dns_record",
		Description: "Deletes a DNS record by id",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in dnsRecordIDInput) (*mcp.CallToolResult, porkbun.Result, error) {
		res, err := client.DeleteDNSRecord(ctx, in.Domain, in.RecordID)
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "porkbun_delete_dns_records_by_name_type",
		Description: "Deletes all DNS records matching a subdomain and record type",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in dnsByNameTypeInput) (*mcp.CallToolResult, porkbun.Result, error) {
		res, err := client.DeleteDNSRecordsByNameType(ctx, in.Domain, in.RecordType, in.Subdomain)
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "porkbun_retrieve_dns_records",
		Description: "Retrieves all DNS records for a domain, or one record by id",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in retrieveDNSRecordsInput) (*mcp.CallToolResult, porkbun.Result, error) {
		res, err := client.RetrieveDNSRecords(ctx, in.Domain, in.RecordID)
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "porkbun_retrieve_dns_records_by_name_type",
		Description: "Retrieves all DNS records matching a subdomain and record type",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in dnsByNameTypeInput) (*mcp.CallToolResult, porkbun.Result, error) {
		res, err := client.RetrieveDNSRecordsByNameType(ctx, in.Domain, in.RecordType, in.Subdomain)
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "porkbun_create_dnssec_record",
		Description: "Creates a DNSSEC (DS) record at the registry for a domain",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in createDNSSECInput) (*mcp.CallToolResult, porkbun.Result, error) {
		res, err := client.CreateDNSSECRecord(ctx, in.Domain, porkbun.DNSSECRecord{
			KeyTag:          in.KeyTag,
			Alg:             in.Alg,
			DigestType:      in.DigestType,
			Digest:          in.Digest,
			MaxSigLife:      in.MaxSigLife,
			KeyDataFlags:    in.KeyDataFlags,
			KeyDataProtocol: in.KeyDataProtocol,
			KeyDataAlgo:     in.KeyDataAlgo,
			KeyDataPubKey:   in.KeyDataPubKey,
		})
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "porkbun_get_dnssec_records",
		Description: "Returns the DNSSEC records the registry holds for a domain",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in domainInput) (*mcp.CallToolResult, porkbun.Result, error) {
		res, err := client.GetDNSSECRecords(ctx, in.Domain)
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "porkbun_delete_dnssec_record",
		Description: "Deletes a DNSSEC record at the registry by key tag",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in deleteDNSSECInput) (*mcp.CallToolResult, porkbun.Result, error) {
		res, err := client.DeleteDNSSECRecord(ctx, in.Domain, in.KeyTag)
		return nil, res, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "porkbun_retrieve_ssl_bundle",
		Description: "Retrieves the SSL certificate bundle for a domain",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in domainInput) (*mcp.CallToolResult, porkbun.Result, error) {
		res, err := client.RetrieveSSLBundle(ctx, in.Domain)
		return nil, res, err
	})
}
