package config

import "time"

type Config struct {
	Addr           string
	Env            string
	JWTSecretKey   string
	JWTTTL         time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	SeedDemoData   bool
}

func Load() *Config {
	return &Config{
		Addr:           GetEnvAsString("ADDR", ":8080"),
		Env:            GetEnvAsString("APP_ENV", "production"),
		JWTSecretKey:   GetEnvAsString("JWT_SECRET_KEY", "linkedpro-dev-secret"),
		JWTTTL:         GetEnvAsDuration("JWT_TTL", 24*time.Hour),
		RateLimitRPS:   float64(GetEnvAsInt("RATE_LIMIT_RPS", 5)),
		RateLimitBurst: GetEnvAsInt("RATE_LIMIT_BURST", 10),
		SeedDemoData:   GetEnvAsBool("SEED_DEMO_DATA", true),
	}
}
