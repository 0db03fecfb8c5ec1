package app

import (
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/DIMO-Network/slack-admin-hooks/internal/config"
	"github.com/DIMO-Network/slack-admin-hooks/internal/controllers/slashcmd"
	"github.com/DIMO-Network/slack-admin-hooks/internal/services/slackhook"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// CreateServers wires the admin-channel sender into the slash-command API.
func CreateServers(settings *config.Settings, logger zerolog.Logger, opts ...slackhook.Option) *fiber.App {
	if settings.SlackOutgoingHookToken == "" {
		logger.Warn().Msg("SLACK_OUTGOING_HOOK_TOKEN is not set; accepted commands will not be relayed")
	}
	sender := slackhook.NewSender(settings, settings.AdminChannel, opts...)
	logger.Info().Str("channel", sender.Channel()).Msg("Relaying accepted commands")
	return CreateFiberApp(logger, sender, settings)
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, notifier slashcmd.ChannelNotifier, settings *config.Settings) *fiber.App {
	logger.Info().Msg("Starting Slack Admin Hooks API...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Slack Admin Hooks API!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	commandController := slashcmd.NewCommandController(settings, notifier)
	logger.Info().Msg("Registering routes...")

	app.Post("/invite", commandController.Invite)
	app.Post("/admin", commandController.Admin)

	return app
}
