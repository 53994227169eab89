package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Auth    AuthConfig
	Store   StoreConfig
	Company CompanyConfig
	SMTP    SMTPConfig
}

type ServerConfig struct {
	Addr           string
	Env            string
	AllowedOrigins []string
}

type AuthConfig struct {
	// Password is the shared operator secret. PasswordHash, when set,
	// takes precedence and is compared with bcrypt.
	Password     string
	PasswordHash string
	CookieName   string
	CookieSecret []byte
	SecureCookie bool
	SessionTTL   time.Duration
}

type StoreConfig struct {
	// Driver: "mysql" or "jsonfile"
	Driver   string
	DSN      string
	JSONPath string
}

// CompanyConfig holds the fixed business identity printed on receipts.
type CompanyConfig struct {
	Name    string
	TaxID   string
	Phone   string
	Address string
}

type SMTPConfig struct {
	Host          string
	Port          string
	User          string
	Pass          string
	From          string
	FromName      string
	TLSMode       string // "", "tls", "starttls"
	SkipVerifyTLS bool
}

func Load() *Config {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		log.Printf("config: .env não encontrado, usando variáveis de ambiente: %v", err)
	}
	v.AutomaticEnv()

	v.SetDefault("SERVER_ADDR", ":3001")
	v.SetDefault("SERVER_ENV", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	v.SetDefault("SESSION_COOKIE", "balcao_session")
	v.SetDefault("SESSION_TTL_HOURS", 12)
	v.SetDefault("STORE_DRIVER", "jsonfile")
	v.SetDefault("STORE_JSON_PATH", "./database.json")
	v.SetDefault("COMPANY_NAME", "Comercial Soares")
	v.SetDefault("COMPANY_TAX_ID", "CNPJ: 40.457.273/0001-84")
	v.SetDefault("COMPANY_PHONE", "Telefone: 34 99985-8000")
	v.SetDefault("COMPANY_ADDRESS", "Endereço: Rua: Getúlio Vargas, Nº 631")

	cfg := &Config{
		Server: ServerConfig{
			Addr:           v.GetString("SERVER_ADDR"),
			Env:            v.GetString("SERVER_ENV"),
			AllowedOrigins: v.GetStringSlice("CORS_ORIGINS"),
		},
		Auth: AuthConfig{
			Password:     v.GetString("POS_PASSWORD"),
			PasswordHash: v.GetString("POS_PASSWORD_HASH"),
			CookieName:   v.GetString("SESSION_COOKIE"),
			CookieSecret: []byte(v.GetString("SESSION_SECRET")),
			SecureCookie: v.GetString("SERVER_ENV") == "production",
			SessionTTL:   time.Duration(v.GetInt("SESSION_TTL_HOURS")) * time.Hour,
		},
		Store: StoreConfig{
			Driver:   v.GetString("STORE_DRIVER"),
			DSN:      v.GetString("DB_DSN"),
			JSONPath: v.GetString("STORE_JSON_PATH"),
		},
		Company: CompanyConfig{
			Name:    v.GetString("COMPANY_NAME"),
			TaxID:   v.GetString("COMPANY_TAX_ID"),
			Phone:   v.GetString("COMPANY_PHONE"),
			Address: v.GetString("COMPANY_ADDRESS"),
		},
		SMTP: SMTPConfig{
			Host:          v.GetString("SMTP_HOST"),
			Port:          v.GetString("SMTP_PORT"),
			User:          v.GetString("SMTP_USER"),
			Pass:          v.GetString("SMTP_PASS"),
			From:          v.GetString("SMTP_FROM"),
			FromName:      v.GetString("SMTP_FROM_NAME"),
			TLSMode:       v.GetString("SMTP_TLS_MODE"),
			SkipVerifyTLS: v.GetBool("SMTP_SKIP_VERIFY_TLS"),
		},
	}

	if len(cfg.Auth.CookieSecret) == 0 {
		log.Printf("config: SESSION_SECRET não definido, sessões não sobrevivem a restarts")
		cfg.Auth.CookieSecret = randomSecret()
	}

	return cfg
}
