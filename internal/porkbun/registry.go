package porkbun

import (
	"fmt"
	"sort"

	"github.com/domainops/porkbun-adapter/internal/secrets"
)

// Operation names. One constant per supported registrar operation; the set
// is fixed at build time.
const (
	OpPing                         = "ping"
	OpGetPricing                   = "get_pricing"
	OpUpdateNameservers            = "update_nameservers"
	OpGetNameservers               = "get_nameservers"
	OpListDomains                  = "list_domains"
	OpCheckDomain                  = "check_domain"
	OpAddURLForward                = "add_url_forward"
	OpGetURLForwarding             = "get_url_forwarding"
	OpDeleteURLForward             = "delete_url_forward"
	OpCreateGlueRecord             = "create_glue_record"
	OpUpdateGlueRecord             = "update_glue_record"
	OpDeleteGlueRecord             = "delete_glue_record"
	OpGetGlueRecords               = "get_glue_records"
	OpCreateDNSRecord              = "create_dns_record"
	OpEditDNSRecord                = "edit_dns_record"
	OpEditDNSRecordsByNameType     = "edit_dns_records_by_name_type"
	OpDeleteDNSRecord              = "delete_dns_record"
	OpDeleteDNSRecordsByNameType   = "delete_dns_records_by_name_type"
	OpRetrieveDNSRecords           = "retrieve_dns_records"
	OpRetrieveDNSRecordsByNameType = "retrieve_dns_records_by_name_type"
	OpCreateDNSSECRecord           = "create_dnssec_record"
	OpGetDNSSECRecords             = "get_dnssec_records"
	OpDeleteDNSSECRecord           = "delete_dnssec_record"
	OpRetrieveSSLBundle            = "retrieve_ssl_bundle"
)

// dnsRecordFields is shared by dns/create and dns/edit. Porkbun wants ttl as
// a string; name defaults to the root of the zone. prio and notes are
// tri-state: an omitted key leaves the value unchanged on edit, an empty
// string clears it.
var dnsRecordFields = []Field{
	{Arg: "name", Wire: "name", Policy: FieldAlways, Default: ""},
	{Arg: "recordType", Wire: "type", Policy: FieldOmitEmpty},
	{Arg: "content", Wire: "content", Policy: FieldOmitEmpty},
	{Arg: "ttl", Wire: "ttl", Policy: FieldAlways, Default: "600"},
	{Arg: "prio", Wire: "prio", Policy: FieldOmitEmpty},
	{Arg: "notes", Wire: "notes", Policy: FieldOmitEmpty},
}

var descriptors = []Descriptor{
	{Name: OpPing, Template: "ping"},
	// pricing does not require authentication; credentials are sent anyway
	{Name: OpGetPricing, Template: "pricing/get"},

	{Name: OpUpdateNameservers, Template: "domain/updateNs/{domain}", Fields: []Field{
		{Arg: "nameservers", Wire: "ns", Policy: FieldOmitEmpty},
	}},
	{Name: OpGetNameservers, Template: "domain/getNs/{domain}"},
	{Name: OpListDomains, Template: "domain/listAll", Fields: []Field{
		{Arg: "start", Wire: "start", Policy: FieldAlways, Default: "0"},
		{Arg: "includeLabels", Wire: "includeLabels", Policy: FieldOmitEmpty},
	}},
	{Name: OpCheckDomain, Template: "domain/checkDomain/{domain}"},

	{Name: OpAddURLForward, Template: "domain/addUrlForward/{domain}", Fields: []Field{
		{Arg: "subdomain", Wire: "subdomain", Policy: FieldAlways, Default: ""},
		{Arg: "location", Wire: "location", Policy: FieldOmitEmpty},
		{Arg: "forwardType", Wire: "type", Policy: FieldAlways, Default: "temporary"},
		{Arg: "includePath", Wire: "includePath", Policy: FieldAlways, Default: "no"},
		{Arg: "wildcard", Wire: "wildcard", Policy: FieldAlways, Default: "no"},
	}},
	{Name: OpGetURLForwarding, Template: "domain/getUrlForwarding/{domain}"},
	{Name: OpDeleteURLForward, Template: "domain/deleteUrlForward/{domain}/{id}"},

	{Name: OpCreateGlueRecord, Template: "domain/createGlue/{domain}/{glueHost}", Fields: []Field{
		{Arg: "ips", Wire: "ips", Policy: FieldOmitEmpty},
	}},
	{Name: OpUpdateGlueRecord, Template: "domain/updateGlue/{domain}/{glueHost}", Fields: []Field{
		{Arg: "ips", Wire: "ips", Policy: FieldOmitEmpty},
	}},
	{Name: OpDeleteGlueRecord, Template: "domain/deleteGlue/{domain}/{glueHost}"},
	{Name: OpGetGlueRecords, Template: "domain/getGlue/{domain}"},

	{Name: OpCreateDNSRecord, Template: "dns/create/{domain}", Fields: dnsRecordFields},
	{Name: OpEditDNSRecord, Template: "dns/edit/{domain}/{id}", Fields: dnsRecordFields},
	{Name: OpEditDNSRecordsByNameType, Template: "dns/editByNameType/{domain}/{type}/{subdomain?}", Fields: []Field{
		{Arg: "content", Wire: "content", Policy: FieldOmitEmpty},
		{Arg: "ttl", Wire: "ttl", Policy: FieldAlways, Default: "600"},
		{Arg: "prio", Wire: "prio", Policy: FieldOmitEmpty},
		{Arg: "notes", Wire: "notes", Policy: FieldOmitEmpty},
	}},
	{Name: OpDeleteDNSRecord, Template: "dns/delete/{domain}/{id}"},
	{Name: OpDeleteDNSRecordsByNameType, Template: "dns/deleteByNameType/{domain}/{type}/{subdomain?}"},
	{Name: OpRetrieveDNSRecords, Template: "dns/retrieve/{domain}/{id?}"},
	{Name: OpRetrieveDNSRecordsByNameType, Template: "dns/retrieveByNameType/{domain}/{type}/{subdomain?}"},

	{Name: OpCreateDNSSECRecord, Template: "dns/createDnssecRecord/{domain}", Fields: []Field{
		{Arg: "keyTag", Wire: "keyTag", Policy: FieldAlways, Default: ""},
		{Arg: "alg", Wire: "alg", Policy: FieldAlways, Default: ""},
		{Arg: "digestType", Wire: "digestType", Policy: FieldAlways, Default: ""},
		{Arg: "digest", Wire: "digest", Policy: FieldAlways, Default: ""},
		{Arg: "maxSigLife", Wire: "maxSigLife", Policy: FieldAlways, Default: ""},
		{Arg: "keyDataFlags", Wire: "keyDataFlags", Policy: FieldAlways, Default: ""},
		{Arg: "keyDataProtocol", Wire: "keyDataProtocol", Policy: FieldAlways, Default: ""},
		{Arg: "keyDataAlgo", Wire: "keyDataAlgo", Policy: FieldAlways, Default: ""},
		{Arg: "keyDataPubKey", Wire: "keyDataPubKey", Policy: FieldAlways, Default: ""},
	}},
	{Name: OpGetDNSSECRecords, Template: "dns/getDnssecRecords/{domain}"},
	{Name: OpDeleteDNSSECRecord, Template: "dns/deleteDnssecRecord/{domain}/{keyTag}"},

	{Name: OpRetrieveSSLBundle, Template: "ssl/retrieve/{domain}"},
}

// Registry is the immutable set of supported operations, keyed by name.
type Registry struct {
	byName map[string]Descriptor
}

// NewRegistry builds the operation registry from the static descriptor
// table. It panics on a malformed table (duplicate names or a descriptor
// declaring a credential wire field) since that is a build-time defect, not
// a runtime condition.
func NewRegistry() *Registry {
	byName := make(map[string]Descriptor, len(descriptors))
	for _, d := range descriptors {
		if _, dup := byName[d.Name]; dup {
			panic(fmt.Sprintf("porkbun: duplicate operation %q", d.Name))
		}
		for _, f := range d.Fields {
			if f.Wire == secrets.WireAPIKey || f.Wire == secrets.WireSecretAPIKey {
				panic(fmt.Sprintf("porkbun: operation %q declares credential field %q", d.Name, f.Wire))
			}
		}
		byName[d.Name] = d
	}
	return &Registry{byName: byName}
}

// Lookup returns the descriptor for the named operation.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Names returns all operation names, sorted, for front-ends that enumerate
// the surface.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered operations.
func (r *Registry) Len() int { return len(r.byName) }
