package settings

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisStore() (*RedisStore, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client, ctx: ctx}, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Bool(key string) (bool, error) {
	v, err := s.client.Get(s.ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

func (s *RedisStore) BoolDefault(key string, def bool) (bool, error) {
	v, err := s.client.Get(s.ctx, key).Result()
	if err == redis.Nil {
		return def, nil
	}
	if err != nil {
		return def, err
	}
	return v == "true", nil
}

func (s *RedisStore) SetBool(key string, v bool) error {
	return s.client.Set(s.ctx, key, strconv.FormatBool(v), 0).Err()
}

func (s *RedisStore) String(key string) (string, error) {
	v, err := s.client.Get(s.ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return v, err
}

func (s *RedisStore) SetString(key, v string) error {
	return s.client.Set(s.ctx, key, v, 0).Err()
}

func (s *RedisStore) Delete(key string) error {
	return s.client.Del(s.ctx, key).Err()
}

func (s *RedisStore) DailyBonus(userID, date string) (float64, error) {
	raw, err := s.client.Get(s.ctx, DailyBonusKey(userID, date)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	// A bit-pattern entry also parses as a (huge) float, so legacy detection
	// has to run before ParseFloat.
	if v, legacy := DecodeLegacyBonus(raw); legacy {
		return v, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("daily bonus entry %q is not in the canonical encoding: %w", raw, err)
	}
	return v, nil
}

func (s *RedisStore) SetDailyBonus(userID, date string, v float64) error {
	return s.client.Set(s.ctx, DailyBonusKey(userID, date), encodeBonus(v), 0).Err()
}

func (s *RedisStore) AddDailyBonus(userID, date string, delta float64) (float64, error) {
	current, err := s.DailyBonus(userID, date)
	if err != nil {
		return 0, err
	}
	next := current + delta
	if err := s.SetDailyBonus(userID, date, next); err != nil {
		return 0, err
	}
	return next, nil
}

// encodeBonus is the canonical encoding: a plain decimal float string.
func encodeBonus(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DecodeLegacyBonus detects entries that stored the raw IEEE-754 bit pattern
// as an integer string. A genuine bonus never exceeds 2^52, so an integer
// above that bound can only be a bit pattern.
func DecodeLegacyBonus(raw string) (float64, bool) {
	bits, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || bits <= 1<<52 {
		return 0, false
	}
	return math.Float64frombits(bits), true
}

// NormalizeDailyBonus rewrites legacy bit-pattern entries into the canonical
// decimal encoding.
func (s *RedisStore) NormalizeDailyBonus() (int, error) {
	var rewritten int
	iter := s.client.Scan(s.ctx, 0, dailyBonusPrefix+"_*", 0).Iterator()
	for iter.Next(s.ctx) {
		key := iter.Val()
		raw, err := s.client.Get(s.ctx, key).Result()
		if err != nil {
			continue
		}
		v, legacy := DecodeLegacyBonus(raw)
		if !legacy {
			continue
		}
		if err := s.client.Set(s.ctx, key, encodeBonus(v), 0).Err(); err != nil {
			return rewritten, err
		}
		rewritten++
	}
	if err := iter.Err(); err != nil {
		return rewritten, err
	}
	return rewritten, nil
}
