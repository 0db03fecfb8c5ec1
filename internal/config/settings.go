package config

import (
	"strings"
	"time"
)

const (
	// DefaultHookBaseURL is the platform's incoming-webhook prefix. The hook token is appended to it.
	DefaultHookBaseURL = "https://hooks.slack.com/services/"
	// DefaultAdminChannel is where invite and admin requests are relayed.
	DefaultAdminChannel = "#admins"

	defaultPort        = 8080
	defaultMonPort     = 8888
	defaultServiceName = "slack-admin-hooks"
	defaultHookTimeout = 30 * time.Second
)

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	SlackInviteToken       string        `env:"SLACK_INVITE_TOKEN"`
	SlackAdminToken        string        `env:"SLACK_ADMIN_TOKEN"`
	SlackOutgoingHookToken string        `env:"SLACK_OUTGOING_HOOK_TOKEN"`
	SlackHookBaseURL       string        `env:"SLACK_HOOK_BASE_URL"`
	AdminChannel           string        `env:"ADMIN_CHANNEL"`
	HookTimeout            time.Duration `env:"HOOK_TIMEOUT"`
}

// SetDefaults fills in every optional field left empty by the environment.
func (s *Settings) SetDefaults() {
	if s.Port == 0 {
		s.Port = defaultPort
	}
	if s.MonPort == 0 {
		s.MonPort = defaultMonPort
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if s.ServiceName == "" {
		s.ServiceName = defaultServiceName
	}
	if s.SlackHookBaseURL == "" {
		s.SlackHookBaseURL = DefaultHookBaseURL
	}
	if s.AdminChannel == "" {
		s.AdminChannel = DefaultAdminChannel
	}
	if s.HookTimeout <= 0 {
		s.HookTimeout = defaultHookTimeout
	}
}

// ExpectedToken returns the secret configured for a command type tag ("invite" or "admin"),
// following the SLACK_<TYPE>_TOKEN naming. Unknown tags have no secret.
func (s *Settings) ExpectedToken(kind string) string {
	switch strings.ToUpper(kind) {
	case "INVITE":
		return s.SlackInviteToken
	case "ADMIN":
		return s.SlackAdminToken
	default:
		return ""
	}
}
