package casino

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"coin-casino/internal/monitoring"
	"coin-casino/internal/wallet"
)

func RegisterRoutes(r fiber.Router, service *Service) {

	r.Post("/casino/coinflip", func(c *fiber.Ctx) error {
		type Req struct {
			UID    int     `json:"uid"`
			Amount float64 `json:"amount"`
			Side   string  `json:"side"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}

		res, err := service.PlayCoinFlip(body.UID, decimal.NewFromFloat(body.Amount), Side(body.Side))
		if err != nil {
			return rejected(c, err)
		}
		return c.JSON(res)
	})

	r.Post("/casino/plinko", func(c *fiber.Ctx) error {
		type Req struct {
			UID    int     `json:"uid"`
			Amount float64 `json:"amount"`
			Risk   string  `json:"risk"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}

		res, err := service.PlayPlinko(body.UID, decimal.NewFromFloat(body.Amount), Risk(body.Risk))
		if err != nil {
			return rejected(c, err)
		}
		return c.JSON(res)
	})

	r.Post("/casino/mines/start", func(c *fiber.Ctx) error {
		type Req struct {
			UID    int     `json:"uid"`
			Amount float64 `json:"amount"`
			Mines  int     `json:"mines"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}

		view, err := service.StartMines(body.UID, decimal.NewFromFloat(body.Amount), body.Mines)
		if err != nil {
			return rejected(c, err)
		}
		return c.JSON(view)
	})

	r.Post("/casino/mines/reveal", func(c *fiber.Ctx) error {
		type Req struct {
			UID  int `json:"uid"`
			Cell int `json:"cell"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}

		res, err := service.Reveal(body.UID, body.Cell)
		if err != nil {
			return rejected(c, err)
		}
		return c.JSON(res)
	})

	r.Post("/casino/mines/cashout", func(c *fiber.Ctx) error {
		type Req struct {
			UID int `json:"uid"`
		}
		var body Req
		if err := c.BodyParser(&body); err != nil {
			return c.SendStatus(400)
		}

		res, err := service.CashOut(body.UID)
		if err != nil {
			return rejected(c, err)
		}
		return c.JSON(res)
	})

	r.Get("/casino/mines/session/:uid", func(c *fiber.Ctx) error {
		uid, err := c.ParamsInt("uid")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "bad uid"})
		}
		view, err := service.ActiveMines(uid)
		if err != nil {
			return rejected(c, err)
		}
		return c.JSON(view)
	})

	r.Get("/casino/history/:game", func(c *fiber.Ctx) error {
		game := Game(c.Params("game"))
		switch game {
		case GameCoinFlip, GameMines, GamePlinko:
			return c.JSON(service.History(game))
		default:
			return c.Status(400).JSON(fiber.Map{"error": "unknown game"})
		}
	})

	r.Get("/casino/stats", func(c *fiber.Ctx) error {
		return c.JSON(service.Stats())
	})
}

func rejected(c *fiber.Ctx, err error) error {
	monitoring.RejectedBets.Inc()

	status := 400
	switch {
	case errors.Is(err, wallet.ErrInsufficientFunds),
		errors.Is(err, ErrSessionActive),
		errors.Is(err, ErrInvalidSession):
		status = 409
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
