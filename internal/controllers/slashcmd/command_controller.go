package slashcmd

import (
	"context"
	"crypto/subtle"

	"github.com/DIMO-Network/slack-admin-hooks/internal/config"
	"github.com/DIMO-Network/slack-admin-hooks/internal/metrics"
	"github.com/DIMO-Network/slack-admin-hooks/internal/services/slackhook"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

const (
	KindInvite = "invite"
	KindAdmin  = "admin"

	inviteReply        = "Thanks!"
	adminReply         = "An admin has received your request."
	notAuthorizedReply = "Not Authorized"
)

type ChannelNotifier interface {
	SendAsync(ctx context.Context, msg slackhook.Message, cb slackhook.Callback) error
}

// CommandRequest is the form body the platform posts for a slash command.
type CommandRequest struct {
	Token    string
	UserName string
	Text     string
}

// CommandController handles the /invite and /admin slash commands.
type CommandController struct {
	settings *config.Settings
	notifier ChannelNotifier
}

// NewCommandController creates a new CommandController.
func NewCommandController(settings *config.Settings, notifier ChannelNotifier) *CommandController {
	return &CommandController{
		settings: settings,
		notifier: notifier,
	}
}

// Invite godoc
// @Summary      Request an invite
// @Description  Slash command callback. Validates the token, acknowledges the user and relays the request to the admin channel.
// @Tags         Commands
// @Accept       x-www-form-urlencoded
// @Produce      plain
// @Param        token      formData  string  true  "Shared secret"
// @Param        user_name  formData  string  true  "Sender"
// @Param        text       formData  string  true  "Who to invite"
// @Success      200  {string}  string  "Thanks!"
// @Failure      403  {string}  string  "Not Authorized"
// @Router       /invite [post]
func (cc *CommandController) Invite(c *fiber.Ctx) error {
	return cc.handleCommand(c, KindInvite, inviteReply, func(req CommandRequest) string {
		return req.UserName + " wants to invite: " + req.Text
	})
}

// Admin godoc
// @Summary      Report something to the admins
// @Description  Slash command callback. Validates the token, acknowledges the user and relays the report to the admin channel.
// @Tags         Commands
// @Accept       x-www-form-urlencoded
// @Produce      plain
// @Param        token      formData  string  true  "Shared secret"
// @Param        user_name  formData  string  true  "Sender"
// @Param        text       formData  string  true  "Report"
// @Success      200  {string}  string  "An admin has received your request."
// @Failure      403  {string}  string  "Not Authorized"
// @Router       /admin [post]
func (cc *CommandController) Admin(c *fiber.Ctx) error {
	return cc.handleCommand(c, KindAdmin, adminReply, func(req CommandRequest) string {
		return req.UserName + " reported something using /admin: " + req.Text
	})
}

func (cc *CommandController) handleCommand(c *fiber.Ctx, kind, reply string, relayText func(CommandRequest) string) error {
	req := DecodeCommandRequest(c.Body())
	logger := zerolog.Ctx(c.UserContext()).With().Str("command", kind).Str("userName", req.UserName).Logger()

	if !ValidateToken(cc.settings, req.Token, kind) {
		metrics.InboundRequests.WithLabelValues(kind, metrics.OutcomeForbidden).Inc()
		logger.Warn().Msg("Rejected slash command with invalid token")
		return writeReply(c, fiber.StatusForbidden, notAuthorizedReply)
	}

	if err := writeReply(c, fiber.StatusOK, reply); err != nil {
		return err
	}
	metrics.InboundRequests.WithLabelValues(kind, metrics.OutcomeAccepted).Inc()

	// The reply is already set; relay failures never reach the caller.
	msg := slackhook.Message{Text: relayText(req)}
	if err := cc.notifier.SendAsync(logger.WithContext(c.UserContext()), msg, nil); err != nil {
		logger.Error().Err(err).Msg("Failed to relay slash command to admin channel")
	}
	return nil
}

// DecodeCommandRequest parses a form-encoded body regardless of its content type.
// Parsing is lenient: raw ';' and broken '%' escapes are kept as they are, and a
// missing field decodes to "". Returned strings are copies and outlive the request.
func DecodeCommandRequest(body []byte) CommandRequest {
	args := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(args)
	args.ParseBytes(body)
	return CommandRequest{
		Token:    string(args.Peek("token")),
		UserName: string(args.Peek("user_name")),
		Text:     string(args.Peek("text")),
	}
}

// ValidateToken reports whether token exactly equals the secret configured for kind.
// A kind without a configured secret never validates.
func ValidateToken(settings *config.Settings, token, kind string) bool {
	expected := settings.ExpectedToken(kind)
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(expected)) == 1
}

func writeReply(c *fiber.Ctx, status int, body string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlain)
	return c.Status(status).SendString(body)
}
