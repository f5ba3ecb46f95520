package config

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/plutov/paypal/v4"
)

// Mode selects the PayPal environment the gateway talks to.
type Mode string

const (
	ModeSandbox Mode = "sandbox"
	ModeLive    Mode = "live"
)

const (
	defaultPort        = "3000"
	defaultCORSOrigins = "*"
)

// Config carries everything the gateway needs at runtime. It is built once
// at startup and passed explicitly; nothing mutates it afterwards.
type Config struct {
	ClientID     string
	ClientSecret string
	Mode         Mode
	Port         string
	BaseURL      string
	CORSOrigins  []string
}

// Load reads configuration from the environment. Missing credentials are an
// error; everything else falls back to a logged default.
func Load(logger *log.Logger) (Config, error) {
	if logger == nil {
		logger = log.Default()
	}

	clientID := os.Getenv("PAYPAL_CLIENT_ID")
	clientSecret := os.Getenv("PAYPAL_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		missing := make([]string, 0, 2)
		if clientID == "" {
			missing = append(missing, "PAYPAL_CLIENT_ID")
		}
		if clientSecret == "" {
			missing = append(missing, "PAYPAL_CLIENT_SECRET")
		}
		return Config{}, errors.New("missing required configuration: " + strings.Join(missing, ", "))
	}

	mode := ModeSandbox
	switch modeEnv := os.Getenv("PAYPAL_MODE"); modeEnv {
	case "", string(ModeSandbox):
	case string(ModeLive):
		mode = ModeLive
	default:
		logger.Printf("WARN: unknown PAYPAL_MODE %q, using sandbox", modeEnv)
	}

	port := os.Getenv("PORT")
	if port == "" {
		logger.Printf("WARN: PORT not set, using default %s", defaultPort)
		port = defaultPort
	}

	baseURL := strings.TrimSuffix(os.Getenv("BASE_URL"), "/")
	if baseURL == "" {
		baseURL = "http://localhost:" + port
		logger.Printf("WARN: BASE_URL not set, using %s", baseURL)
	}

	corsEnv := os.Getenv("CORS_ORIGINS")
	if corsEnv == "" {
		corsEnv = defaultCORSOrigins
	}

	return Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Mode:         mode,
		Port:         port,
		BaseURL:      baseURL,
		CORSOrigins:  parseCSV(corsEnv),
	}, nil
}

// APIBase is the PayPal REST endpoint for the configured mode.
func (c Config) APIBase() string {
	if c.Mode == ModeLive {
		return paypal.APIBaseLive
	}
	return paypal.APIBaseSandBox
}

// ReturnURL is where PayPal sends the payer after approving an order.
func (c Config) ReturnURL() string {
	return c.BaseURL + "/success.html"
}

// CancelURL is where PayPal sends the payer after abandoning checkout.
func (c Config) CancelURL() string {
	return c.BaseURL + "/cancel.html"
}

// ApprovalURL is the hosted checkout page for an order in the configured
// mode. The browser client builds the same URL from the health-check mode;
// this is the single server-side definition of the pattern.
func (c Config) ApprovalURL(orderID string) string {
	host := "www.sandbox.paypal.com"
	if c.Mode == ModeLive {
		host = "www.paypal.com"
	}
	return "https://" + host + "/checkoutnow?token=" + orderID
}

func parseCSV(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
