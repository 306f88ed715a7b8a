package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/madhvpruthi/ROOV/internal/models"
)

const (
	propertyCounterKey = "properties:next_id"
	propertyIndexKey   = "properties:ids"
	contactCounterKey  = "contacts:next_id"
	contactIndexKey    = "contacts:ids"
)

// RedisStore keeps each record as a JSON string under its own key, with a
// sorted set per collection (scored by id) preserving insertion order.
// Ids come from INCR counters, so they are monotonic integers like the
// other backends.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis store.
func NewRedisStore(ctx context.Context, redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, &StorageError{Op: "parse redis url", Err: err}
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, &StorageError{Op: "ping redis", Err: err}
	}

	return &RedisStore{client: client}, nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() {
	s.client.Close()
}

// Ping checks the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// propertyKey returns the key holding one property record.
func propertyKey(id int64) string {
	return fmt.Sprintf("property:%d", id)
}

// contactKey returns the key holding one contact record.
func contactKey(id int64) string {
	return fmt.Sprintf("contact:%d", id)
}

// ListProperties returns all properties in id order.
func (s *RedisStore) ListProperties(ctx context.Context) ([]models.Property, error) {
	ids, err := s.client.ZRange(ctx, propertyIndexKey, 0, -1).Result()
	if err != nil {
		return nil, &StorageError{Op: "list property ids", Err: err}
	}

	props := []models.Property{}
	if len(ids) == 0 {
		return props, nil
	}

	keys := make([]string, len(ids))
	for i, idStr := range ids {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return nil, &StorageError{Op: "decode property index entry", Err: err}
		}
		keys[i] = propertyKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, &StorageError{Op: "fetch property records", Err: err}
	}
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Index entry without a record; skip rather than fail the list.
			continue
		}
		var p models.Property
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, &StorageError{Op: "decode property record", Err: err}
		}
		if p.Images == nil {
			p.Images = []string{}
		}
		props = append(props, p)
	}
	return props, nil
}

// GetProperty retrieves a property by id.
func (s *RedisStore) GetProperty(ctx context.Context, id int64) (*models.Property, error) {
	raw, err := s.client.Get(ctx, propertyKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StorageError{Op: "get property", Err: err}
	}

	var p models.Property
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, &StorageError{Op: "decode property record", Err: err}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return &p, nil
}

// InsertProperty assigns the next id from the counter and stores the record.
func (s *RedisStore) InsertProperty(ctx context.Context, p models.Property) (*models.Property, error) {
	id, err := s.client.Incr(ctx, propertyCounterKey).Result()
	if err != nil {
		return nil, &StorageError{Op: "assign property id", Err: err}
	}
	p.ID = id

	data, err := json.Marshal(p)
	if err != nil {
		return nil, &StorageError{Op: "encode property record", Err: err}
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, propertyKey(id), data, 0)
	pipe.ZAdd(ctx, propertyIndexKey, redis.Z{
		Score:  float64(id),
		Member: strconv.FormatInt(id, 10),
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, &StorageError{Op: "insert property", Err: err}
	}

	return &p, nil
}

// ReplaceProperty overwrites the record with the given id.
func (s *RedisStore) ReplaceProperty(ctx context.Context, id int64, p models.Property) (*models.Property, error) {
	exists, err := s.client.Exists(ctx, propertyKey(id)).Result()
	if err != nil {
		return nil, &StorageError{Op: "check property exists", Err: err}
	}
	if exists == 0 {
		return nil, ErrNotFound
	}

	p.ID = id
	data, err := json.Marshal(p)
	if err != nil {
		return nil, &StorageError{Op: "encode property record", Err: err}
	}
	if err := s.client.Set(ctx, propertyKey(id), data, 0).Err(); err != nil {
		return nil, &StorageError{Op: "update property", Err: err}
	}
	return &p, nil
}

// DeleteProperty removes the record and its index entry. The id counter is
// never decremented, so deleted ids are not reassigned.
func (s *RedisStore) DeleteProperty(ctx context.Context, id int64) error {
	deleted, err := s.client.Del(ctx, propertyKey(id)).Result()
	if err != nil {
		return &StorageError{Op: "delete property", Err: err}
	}
	if deleted == 0 {
		return ErrNotFound
	}
	if err := s.client.ZRem(ctx, propertyIndexKey, strconv.FormatInt(id, 10)).Err(); err != nil {
		return &StorageError{Op: "remove property index entry", Err: err}
	}
	return nil
}

// ListContacts returns all contact messages in id order.
func (s *RedisStore) ListContacts(ctx context.Context) ([]models.Contact, error) {
	ids, err := s.client.ZRange(ctx, contactIndexKey, 0, -1).Result()
	if err != nil {
		return nil, &StorageError{Op: "list contact ids", Err: err}
	}

	contacts := []models.Contact{}
	if len(ids) == 0 {
		return contacts, nil
	}

	keys := make([]string, len(ids))
	for i, idStr := range ids {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return nil, &StorageError{Op: "decode contact index entry", Err: err}
		}
		keys[i] = contactKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, &StorageError{Op: "fetch contact records", Err: err}
	}
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var c models.Contact
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return nil, &StorageError{Op: "decode contact record", Err: err}
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}

// InsertContact assigns the next id from the counter and stores the message.
func (s *RedisStore) InsertContact(ctx context.Context, c models.Contact) (*models.Contact, error) {
	id, err := s.client.Incr(ctx, contactCounterKey).Result()
	if err != nil {
		return nil, &StorageError{Op: "assign contact id", Err: err}
	}
	c.ID = id

	data, err := json.Marshal(c)
	if err != nil {
		return nil, &StorageError{Op: "encode contact record", Err: err}
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, contactKey(id), data, 0)
	pipe.ZAdd(ctx, contactIndexKey, redis.Z{
		Score:  float64(id),
		Member: strconv.FormatInt(id, 10),
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, &StorageError{Op: "insert contact", Err: err}
	}

	return &c, nil
}
