package redis

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"voltassist/internal/auth"
	repo "voltassist/internal/auth/repository"
)

func (r *implRepository) SaveOTP(ctx context.Context, mobile, code string, ttl time.Duration) error {
	if err := r.client.Set(ctx, otpKey(mobile), code, ttl).Err(); err != nil {
		r.l.Errorf(ctx, "auth/repository/redis.SaveOTP: %v", err)
		return repo.ErrFailedToSave
	}
	return nil
}

func (r *implRepository) GetOTP(ctx context.Context, mobile string) (string, error) {
	code, err := r.client.Get(ctx, otpKey(mobile)).Result()
	if err == goredis.Nil {
		return "", nil
	}
	if err != nil {
		r.l.Errorf(ctx, "auth/repository/redis.GetOTP: %v", err)
		return "", repo.ErrFailedToGet
	}
	return code, nil
}

func (r *implRepository) DeleteOTP(ctx context.Context, mobile string) error {
	if err := r.client.Del(ctx, otpKey(mobile)).Err(); err != nil {
		r.l.Errorf(ctx, "auth/repository/redis.DeleteOTP: %v", err)
		return repo.ErrFailedToSave
	}
	return nil
}

func (r *implRepository) SaveSession(ctx context.Context, sess auth.Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return repo.ErrFailedToSave
	}
	if err := r.client.Set(ctx, sessionKey(sess.Token), payload, ttl).Err(); err != nil {
		r.l.Errorf(ctx, "auth/repository/redis.SaveSession: %v", err)
		return repo.ErrFailedToSave
	}
	return nil
}

func (r *implRepository) GetSession(ctx context.Context, token string) (auth.Session, error) {
	payload, err := r.client.Get(ctx, sessionKey(token)).Bytes()
	if err == goredis.Nil {
		return auth.Session{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "auth/repository/redis.GetSession: %v", err)
		return auth.Session{}, repo.ErrFailedToGet
	}

	var sess auth.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		r.l.Errorf(ctx, "auth/repository/redis.GetSession unmarshal: %v", err)
		return auth.Session{}, repo.ErrFailedToGet
	}
	return sess, nil
}
