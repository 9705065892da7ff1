package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultRunAddress       = ":8080"
	DefaultDatabaseURI      = ""
	DefaultPaymentAddress   = "https://api.razorpay.com"
	DefaultPaymentTimeout   = 10 * time.Second
	DefaultPassCost         = 3
	DefaultSecretKey        = "secret"
	DefaultUserTokenExp     = 7 * 24 * time.Hour
	DefaultAdminTokenExp    = 24 * time.Hour
	DefaultDeliveryTokenExp = 15 * time.Minute
	DefaultRefreshTokenExp  = 7 * 24 * time.Hour
)

type Config struct {
	RunAddress     string `env:"RUN_ADDRESS"`
	DatabaseURI    string `env:"DATABASE_URI"`
	PaymentAddress string `env:"PAYMENT_ADDRESS"`
	PaymentKeyID   string `env:"PAYMENT_KEY_ID"`
	PaymentSecret  string `env:"PAYMENT_KEY_SECRET"`

	PaymentTimeout time.Duration `env:"PROCESSOR_TIMEOUT"`

	PassCost  int    `env:"PASS_COST"`
	SecretKey string `env:"SECRET_KEY"`

	UserTokenExp     time.Duration `env:"USER_TOKEN_LIFETIME"`
	AdminTokenExp    time.Duration `env:"ADMIN_TOKEN_LIFETIME"`
	DeliveryTokenExp time.Duration `env:"DELIVERY_TOKEN_LIFETIME"`
	RefreshTokenExp  time.Duration `env:"REFRESH_TOKEN_LIFETIME"`
}

func Read() (Config, error) {
	config := Config{}

	flag.StringVar(&config.RunAddress, "a", DefaultRunAddress, "Server run address")
	flag.StringVar(&config.DatabaseURI, "d", DefaultDatabaseURI, "Database connect string")
	flag.StringVar(&config.PaymentAddress, "r", DefaultPaymentAddress, "Payment processor address protocol://hostname:port")
	flag.StringVar(&config.PaymentKeyID, "k", "", "Payment processor key id")
	flag.StringVar(&config.PaymentSecret, "x", "", "Payment processor key secret")
	flag.DurationVar(&config.PaymentTimeout, "o", DefaultPaymentTimeout, "Payment processor request timeout")

	flag.IntVar(&config.PassCost, "p", DefaultPassCost, "Pass cost for password hash")
	flag.StringVar(&config.SecretKey, "s", DefaultSecretKey, "Secret key for token")

	flag.DurationVar(&config.UserTokenExp, "u", DefaultUserTokenExp, "User token lifetime (e.g. 1h, 30m, 2h30m)")
	flag.DurationVar(&config.AdminTokenExp, "m", DefaultAdminTokenExp, "Admin token lifetime")
	flag.DurationVar(&config.DeliveryTokenExp, "t", DefaultDeliveryTokenExp, "Delivery access token lifetime")
	flag.DurationVar(&config.RefreshTokenExp, "f", DefaultRefreshTokenExp, "Delivery refresh token lifetime")

	flag.Parse()

	err := env.Parse(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
