package directory

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"gatecheck/internal/checkin/models"
	"gatecheck/internal/checkin/ports"
	id "gatecheck/pkg/domain"
)

// CachedRegistrations is a redis read-through cache in front of a
// registration directory. Entrance terminals hammer the same handful of
// sessions with code lookups; a short TTL keeps the backing store off the hot
// path while bounding staleness after staff edits.
//
// Cache failures degrade to the backing store: a dead redis slows check-in
// down, it never stops it.
type CachedRegistrations struct {
	next   ports.RegistrationDirectory
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedRegistrations(next ports.RegistrationDirectory, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedRegistrations {
	return &CachedRegistrations{next: next, client: client, ttl: ttl, logger: logger}
}

func (c *CachedRegistrations) FindByCode(ctx context.Context, code string) (*models.Registration, error) {
	key := "directory:registration:code:" + code
	if reg, ok := c.lookup(ctx, key); ok {
		return reg, nil
	}

	reg, err := c.next.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, reg)
	return reg, nil
}

func (c *CachedRegistrations) FindByID(ctx context.Context, registrationID id.RegistrationID) (*models.Registration, error) {
	key := "directory:registration:id:" + registrationID.String()
	if reg, ok := c.lookup(ctx, key); ok {
		return reg, nil
	}

	reg, err := c.next.FindByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, reg)
	return reg, nil
}

func (c *CachedRegistrations) lookup(ctx context.Context, key string) (*models.Registration, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "registration cache read failed", "key", key, "error", err)
		}
		return nil, false
	}
	var reg models.Registration
	if err := json.Unmarshal(payload, &reg); err != nil {
		c.logger.WarnContext(ctx, "registration cache entry corrupt", "key", key, "error", err)
		return nil, false
	}
	return &reg, true
}

func (c *CachedRegistrations) store(ctx context.Context, key string, reg *models.Registration) {
	payload, err := json.Marshal(reg)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "registration cache write failed", "key", key, "error", err)
	}
}

// CachedSessions caches session lookups the same way. Sessions change even
// less often than registrations; the TTL matters mostly for the active flag.
type CachedSessions struct {
	next   ports.SessionDirectory
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedSessions(next ports.SessionDirectory, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedSessions {
	return &CachedSessions{next: next, client: client, ttl: ttl, logger: logger}
}

func (c *CachedSessions) FindByID(ctx context.Context, sessionID id.SessionID) (*models.Session, error) {
	key := "directory:session:" + sessionID.String()

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var session models.Session
		if jsonErr := json.Unmarshal(payload, &session); jsonErr == nil {
			return &session, nil
		}
		c.logger.WarnContext(ctx, "session cache entry corrupt", "key", key)
	} else if !errors.Is(err, redis.Nil) {
		c.logger.WarnContext(ctx, "session cache read failed", "key", key, "error", err)
	}

	session, err := c.next.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if data, marshalErr := json.Marshal(session); marshalErr == nil {
		if setErr := c.client.Set(ctx, key, data, c.ttl).Err(); setErr != nil {
			c.logger.WarnContext(ctx, "session cache write failed", "key", key, "error", setErr)
		}
	}
	return session, nil
}
