package redis

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"voltassist/internal/auth/repository"
	"voltassist/pkg/log"
)

type implRepository struct {
	client *goredis.Client
	l      log.Logger
}

// New creates a new Redis-backed SessionRepository.
func New(client *goredis.Client, l log.Logger) repository.SessionRepository {
	if client == nil {
		panic("auth/repository/redis: client is required")
	}
	return &implRepository{client: client, l: l}
}

func otpKey(mobile string) string {
	return fmt.Sprintf("otp:%s", mobile)
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}
