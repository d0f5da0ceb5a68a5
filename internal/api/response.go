package api

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/domainops/porkbun-adapter/internal/porkbun"
)

// errorStatus maps a registrar error to the status this service replies with.
// Upstream transport trouble surfaces as a gateway problem, everything else
// is the caller's request.
func errorStatus(err error) int {
	var perr *porkbun.Error
	if !errors.As(err, &perr) {
		return http.StatusInternalServerError
	}
	switch perr.Kind {
	case porkbun.KindTimeout:
		return http.StatusGatewayTimeout
	case porkbun.KindNetwork, porkbun.KindHTTP, porkbun.KindProtocol:
		return http.StatusBadGateway
	default:
		return http.StatusBadRequest
	}
}

func respond(c *fiber.Ctx, result porkbun.Result, err error) error {
	if err != nil {
		body := fiber.Map{"error": err.Error()}
		var perr *porkbun.Error
		if errors.As(err, &perr) {
			body["kind"] = perr.Kind.String()
		}
		return c.Status(errorStatus(err)).JSON(body)
	}
	return c.Status(http.StatusOK).JSON(result)
}
