package wallet

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func RegisterRoutes(r fiber.Router, service *Service) {

	r.Get("/wallet/balance/:uid", func(c *fiber.Ctx) error {
		uid, err := c.ParamsInt("uid")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "bad uid"})
		}
		b, err := service.Balance(uid)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"balance": b})
	})
}

func RegisterAdminRoutes(r fiber.Router, service *Service) {

	r.Post("/wallet/credit", func(c *fiber.Ctx) error {
		type Req struct {
			UID    int     `json:"uid"`
			Amount float64 `json:"amount"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}

		if err := service.Topup(body.UID, decimal.NewFromFloat(body.Amount)); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "credited"})
	})
}
