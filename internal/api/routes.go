package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, h *Handler) {
	app.Get("/", h.Info)
	app.Get("/health", h.Health)

	registerOperations(app, h)
	registerOperations(app.Group("/porkbun"), h)
}

func registerOperations(r fiber.Router, h *Handler) {
	r.Get("/ping", h.Ping)
	r.Get("/pricing", h.GetPricing)

	r.Post("/domain/update-nameservers", h.UpdateNameservers)
	r.Get("/domain/get-nameservers", h.GetNameservers)
	r.Get("/domain/list", h.ListDomains)
	r.Get("/domain/check", h.CheckDomain)

	r.Post("/domain/url-forward/add", h.AddURLForward)
	r.Get("/domain/url-forward/get", h.GetURLForwarding)
	r.Delete("/domain/url-forward/delete", h.DeleteURLForward)

	r.Post("/domain/glue/create", h.CreateGlueRecord)
	r.Put("/domain/glue/update", h.UpdateGlueRecord)
	r.Delete("/domain/glue/delete", h.DeleteGlueRecord)
	r.Get("/domain/glue/list", h.GetGlueRecords)

	r.Post("/dns/create", h.CreateDNSRecord)
	r.Put("/dns/edit", h.EditDNSRecord)
	r.Put("/dns/edit-by-name-type", h.EditDNSRecordsByNameType)
	r.Delete("/dns/delete", h.DeleteDNSRecord)
	r.Delete("/dns/delete-by-name-type", h.DeleteDNSRecordsByNameType)
	r.Get("/dns/retrieve", h.RetrieveDNSRecords)
	r.Get("/dns/retrieve-by-name-type", h.RetrieveDNSRecordsByNameType)

	r.Post("/dnssec/create", h.CreateDNSSECRecord)
	r.Get("/dnssec/get", h.GetDNSSECRecords)
	r.Delete("/dnssec/delete", h.DeleteDNSSECRecord)

	r.Get("/ssl/retrieve", h.RetrieveSSLBundle)
}
