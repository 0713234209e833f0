package config

// DBConfig contains PostgreSQL database configuration. Only needed when
// SESSION_STORE=postgres.
type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"agroconecta"`
	Password string `env:"PASSWORD" envDefault:"agroconecta"`
	Name     string `env:"NAME"     envDefault:"agroconecta"`
	SSLMode  string `env:"SSL_MODE" envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
}

// RedisConfig contains Redis configuration. Only needed when
// SESSION_STORE=redis.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}
