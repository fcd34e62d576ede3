package redis

import "errors"

var (
	ErrEmptyConnectionURL           = errors.New("redis: empty connection URL, use REDIS_URL env var")
	ErrFailedToParseRedisConnString = errors.New("redis: failed to parse connection URL")
	ErrRedisNotReady                = errors.New("redis: server did not answer within the retry budget")
	ErrHealthcheckFailed            = errors.New("redis: healthcheck failed")
)
