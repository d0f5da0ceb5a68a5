package api

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/domainops/porkbun-adapter/internal/porkbun"
)

type Handler struct {
	Logger  *zap.Logger
	Client  *porkbun.Client
	Version string
}

func NewHandler(logger *zap.Logger, client *porkbun.Client, version string) *Handler {
	return &Handler{Logger: logger, Client: client, Version: version}
}

// ─── Service endpoints ───────────────────────────────────────────────────────

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"status":  "healthy",
		"service": "porkbun-adapter",
		"version": h.Version,
	})
}

func (h *Handler) Info(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"service": "porkbun-adapter",
		"version": h.Version,
		"tools":   h.Client.Registry().Len(),
		"categories": fiber.Map{
			"general":           2,
			"domain_management": 4,
			"url_forwarding":    3,
			"glue_records":      4,
			"dns_records":       7,
			"dnssec":            3,
			"ssl":               1,
		},
		"api_docs": "https://porkbun.com/api/json/v3/documentation",
	})
}

// ─── General ─────────────────────────────────────────────────────────────────

func (h *Handler) Ping(c *fiber.Ctx) error {
	res, err := h.Client.Ping(c.Context())
	return respond(c, res, err)
}

func (h *Handler) GetPricing(c *fiber.Ctx) error {
	res, err := h.Client.GetPricing(c.Context())
	return respond(c, res, err)
}

// ─── Domain management ───────────────────────────────────────────────────────

type updateNameserversRequest struct {
	Domain      string   `json:"domain"`
	Nameservers []string `json:"nameservers"`
}

func (h *Handler) UpdateNameservers(c *fiber.Ctx) error {
	var req updateNameserversRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	res, err := h.Client.UpdateNameservers(c.Context(), req.Domain, req.Nameservers)
	return respond(c, res, err)
}

func (h *Handler) GetNameservers(c *fiber.Ctx) error {
	res, err := h.Client.GetNameservers(c.Context(), c.Query("domain"))
	return respond(c, res, err)
}

func (h *Handler) ListDomains(c *fiber.Ctx) error {
	start, _ := strconv.Atoi(c.Query("start", "0"))
	includeLabels := c.Query("include_labels") == "yes" || c.Query("include_labels") == "true"
	res, err := h.Client.ListDomains(c.Context(), start, includeLabels)
	return respond(c, res, err)
}

func (h *Handler) CheckDomain(c *fiber.Ctx) error {
	res, err := h.Client.CheckDomain(c.Context(), c.Query("domain"))
	return respond(c, res, err)
}

// ─── URL forwarding ──────────────────────────────────────────────────────────

type addURLForwardRequest struct {
	Domain      string `json:"domain"`
	Location    string `json:"location"`
	ForwardType string `json:"forward_type"`
	Subdomain   string `json:"subdomain"`
	IncludePath string `json:"include_path"`
	Wildcard    string `json:"wildcard"`
}

func (h *Handler) AddURLForward(c *fiber.Ctx) error {
	var req addURLForwardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	res, err := h.Client.AddURLForward(c.Context(), req.Domain, porkbun.URLForward{
		Location:    req.Location,
		Type:        req.ForwardType,
		Subdomain:   req.Subdomain,
		IncludePath: req.IncludePath,
		Wildcard:    req.Wildcard,
	})
	return respond(c, res, err)
}

func (h *Handler) GetURLForwarding(c *fiber.Ctx) error {
	res, err := h.Client.GetURLForwarding(c.Context(), c.Query("domain"))
	return respond(c, res, err)
}

func (h *Handler) DeleteURLForward(c *fiber.Ctx) error {
	res, err := h.Client.DeleteURLForward(c.Context(), c.Query("domain"), c.Query("record_id"))
	return respond(c, res, err)
}

// ─── Glue records ────────────────────────────────────────────────────────────

type glueRecordRequest struct {
	Domain   string   `json:"domain"`
	GlueHost string   `json:"glue_host"`
	IPs      []string `json:"ips"`
}

func (h *Handler) CreateGlueRecord(c *fiber.Ctx) error {
	var req glueRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	res, err := h.Client.CreateGlueRecord(c.Context(), req.Domain, req.GlueHost, req.IPs)
	return respond(c, res, err)
}

func (h *Handler) UpdateGlueRecord(c *fiber.Ctx) error {
	var req glueRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	res, err := h.Client.UpdateGlueRecord(c.Context(), req.Domain, req.GlueHost, req.IPs)
	return respond(c, res, err)
}

func (h *Handler) DeleteGlueRecord(c *fiber.Ctx) error {
	res, err := h.Client.DeleteGlueRecord(c.Context(), c.Query("domain"), c.Query("glue_host"))
	return respond(c, res, err)
}

func (h *Handler) GetGlueRecords(c *fiber.Ctx) error {
	res, err := h.Client.GetGlueRecords(c.Context(), c.Query("domain"))
	return respond(c, res, err)
}

// ─── DNS records ─────────────────────────────────────────────────────────────

type dnsRecordRequest struct {
	Domain     string  `json:"domain"`
	RecordID   string  `json:"record_id"`
	RecordType string  `json:"record_type"`
	Content    string  `json:"content"`
	Name       string  `json:"name"`
	Subdomain  string  `json:"subdomain"`
	TTL        int     `json:"ttl"`
	Prio       *string `json:"prio"`
	Notes      *string `json:"notes"`
}

func (r dnsRecordRequest) record() porkbun.DNSRecord {
	return porkbun.DNSRecord{
		Type:    r.RecordType,
		Content: r.Content,
		Name:    r.Name,
		TTL:     r.TTL,
		Prio:    r.Prio,
		Notes:   r.Notes,
	}
}

func (h *Handler) CreateDNSRecord(c *fiber.Ctx) error {
	var req dnsRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	res, err := h.Client.CreateDNSRecord(c.Context(), req.Domain, req.record())
	return respond(c, res, err)
}

func (h *Handler) EditDNSRecord(c *fiber.Ctx) error {
	var req dnsRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	res, err := h.Client.EditDNSRecord(c.Context(), req.Domain, req.RecordID, req.record())
	return respond(c, res, err)
}

func (h *Handler) EditDNSRecordsByNameType(c *fiber.Ctx) error {
	var req dnsRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	res, err := h.Client.EditDNSRecordsByNameType(c.Context(), req.Domain, req.RecordType, req.Subdomain, req.record())
	return respond(c, res, err)
}

func (h *Handler) DeleteDNSRecord(c *fiber.Ctx) error {
	res, err := h.Client.DeleteDNSRecord(c.Context(), c.Query("domain"), c.Query("record_id"))
	return respond(c, res, err)
}

func (h *Handler) DeleteDNSRecordsByNameType(c *fiber.Ctx) error {
	res, err := h.Client.DeleteDNSRecordsByNameType(c.Context(),
		c.Query("domain"), c.Query("record_type"), c.Query("subdomain"))
	return respond(c, res, err)
}

func (h *Handler) RetrieveDNSRecords(c *fiber.Ctx) error {
	res, err := h.Client.RetrieveDNSRecords(c.Context(), c.Query("domain"), c.Query("record_id"))
	return respond(c, res, err)
}

func (h *Handler) RetrieveDNSRecordsByNameType(c *fiber.Ctx) error {
	res, err := h.Client.RetrieveDNSRecordsByNameType(c.Context(),
		c.Query("domain"), c.Query("record_type"), c.Query("subdomain"))
	return respond(c, res, err)
}

// ─── DNSSEC ──────────────────────────────────────────────────────────────────

type dnssecRecordRequest struct {
	Domain          string `json:"domain"`
	KeyTag          string `json:"key_tag"`
	Alg             string `json:"alg"`
	DigestType      string `json:"digest_type"`
	Digest          string `json:"digest"`
	MaxSigLife      string `json:"max_sig_life"`
	KeyDataFlags    string `json:"key_data_flags"`
	KeyDataProtocol string `json:"key_data_protocol"`
	KeyDataAlgo     string `json:"key_data_algo"`
	KeyDataPubKey   string `json:"key_data_pub_key"`
}

func (h *Handler) CreateDNSSECRecord(c *fiber.Ctx) error {
	var req dnssecRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	res, err := h.Client.CreateDNSSECRecord(c.Context(), req.Domain, porkbun.DNSSECRecord{
		KeyTag:          req.KeyTag,
		Alg:             req.Alg,
		DigestType:      req.DigestType,
		Digest:          req.Digest,
		MaxSigLife:      req.MaxSigLife,
		KeyDataFlags:    req.KeyDataFlags,
		KeyDataProtocol: req.KeyDataProtocol,
		KeyDataAlgo:     req.KeyDataAlgo,
		KeyDataPubKey:   req.KeyDataPubKey,
	})
	return respond(c, res, err)
}

func (h *Handler) GetDNSSECRecords(c *fiber.Ctx) error {
	res, err := h.Client.GetDNSSECRecords(c.Context(), c.Query("domain"))
	return respond(c, res, err)
}

func (h *Handler) DeleteDNSSECRecord(c *fiber.Ctx) error {
	res, err := h.Client.DeleteDNSSECRecord(c.Context(), c.Query("domain"), c.Query("key_tag"))
	return respond(c, res, err)
}

// ─── SSL ─────────────────────────────────────────────────────────────────────

func (h *Handler) RetrieveSSLBundle(c *fiber.Ctx) error {
	res, err := h.Client.RetrieveSSLBundle(c.Context(), c.Query("domain"))
	return respond(c, res, err)
}
