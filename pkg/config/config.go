package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// DB
	PostgresDSN string `envconfig:"POSTGRES_DSN" required:"true"`

	// JWT
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"60"`

	// Stripe
	StripeSecretKey     string `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	StripeWebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET" required:"true"`
	Currency            string `envconfig:"CURRENCY" default:"usd"`

	// RabbitMQ (optional; events are skipped when empty)
	RabbitURL        string `envconfig:"RABBIT_URL" default:""`
	LearnhubExchange string `envconfig:"LEARNHUB_EXCHANGE" default:"learnhub.exchange"`
	NotifierQueue    string `envconfig:"NOTIFIER_QUEUE" default:"learnhub.notify.q"`

	// Redis (optional course cache)
	RedisAddr   string `envconfig:"REDIS_ADDR" default:""`
	CacheTTLSec int    `envconfig:"CACHE_TTL_SEC" default:"300"`

	// Network
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	// Client origin used for checkout redirect targets
	ClientOrigin string `envconfig:"CLIENT_ORIGIN" default:"http://localhost:5173"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}

// Notifier is the subset the notification worker needs; it does not
// touch the database or the payment provider.
type Notifier struct {
	RabbitURL        string `envconfig:"RABBIT_URL" required:"true"`
	LearnhubExchange string `envconfig:"LEARNHUB_EXCHANGE" default:"learnhub.exchange"`
	NotifierQueue    string `envconfig:"NOTIFIER_QUEUE" default:"learnhub.notify.q"`
	Prefetch         int    `envconfig:"NOTIFIER_PREFETCH" default:"8"`
}

func LoadNotifier() (Notifier, error) {
	var c Notifier
	err := envconfig.Process("", &c)
	return c, err
}
