package redis

import "time"

type Config struct {
	ConnectionURL      string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"` // ConnectionURL in the form "redis://:password@localhost:6379/0".
	RetryAttempts      int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`             // RetryAttempts is the number of connection attempts.
	RetryInterval      time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`            // RetryInterval is the delay between attempts.
	ConnectTimeout     time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`          // ConnectTimeout bounds the whole connection procedure.
	HealthcheckTimeout time.Duration `env:"REDIS_HEALTHCHECK_TIMEOUT" envDefault:"5s"`       // HealthcheckTimeout bounds a single Healthcheck probe.
	KeyPrefix          string        `env:"REDIS_KEY_PREFIX" envDefault:"enum:overrides:"`   // KeyPrefix namespaces the override hashes.
}
