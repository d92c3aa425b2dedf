package helper

import (
	"github.com/gofiber/fiber/v2"
)

type ClientInfo struct {
	IPAddress string
	UserAgent string
}

// GetClientInfo captures the requester address and user agent at
// submission time. c.IP() already honours X-Forwarded-For because the
// app is configured with ProxyHeader.
func GetClientInfo(c *fiber.Ctx) ClientInfo {
	ip := c.IP()
	if ip == "" {
		ip = c.Get(fiber.HeaderXForwardedFor)
	}
	return ClientInfo{
		IPAddress: ip,
		UserAgent: c.Get(fiber.HeaderUserAgent),
	}
}
