package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/skillstream/lms-backend/internal/domain"
)

const catalogListKey = "courses:all"

// RedisCatalogCache is the cache-aside layer for course previews. Nothing
// invalidates these keys on writes; entries live until the TTL lapses or
// the next read-through overwrites them (known staleness window, see
// DESIGN.md).
type RedisCatalogCache struct {
	client *redis.Client
}

func NewRedisCatalogCache(client *redis.Client) *RedisCatalogCache {
	return &RedisCatalogCache{client: client}
}

func courseKey(courseID uuid.UUID) string {
	return "course:" + courseID.String()
}

func (c *RedisCatalogCache) GetCourse(ctx context.Context, courseID uuid.UUID) (*domain.Course, error) {
	raw, err := c.client.Get(ctx, courseKey(courseID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read course cache: %w", err)
	}
	var course domain.Course
	if err := json.Unmarshal(raw, &course); err != nil {
		return nil, fmt.Errorf("unmarshal course cache: %w", err)
	}
	return &course, nil
}

func (c *RedisCatalogCache) PutCourse(ctx context.Context, course domain.Course, ttl time.Duration) error {
	payload, err := json.Marshal(course)
	if err != nil {
		return fmt.Errorf("marshal course cache: %w", err)
	}
	return c.client.Set(ctx, courseKey(course.CourseID), payload, ttl).Err()
}

func (c *RedisCatalogCache) GetAllCourses(ctx context.Context) ([]domain.Course, error) {
	raw, err := c.client.Get(ctx, catalogListKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog cache: %w", err)
	}
	var courses []domain.Course
	if err := json.Unmarshal(raw, &courses); err != nil {
		return nil, fmt.Errorf("unmarshal catalog cache: %w", err)
	}
	return courses, nil
}

func (c *RedisCatalogCache) PutAllCourses(ctx context.Context, courses []domain.Course, ttl time.Duration) error {
	payload, err := json.Marshal(courses)
	if err != nil {
		return fmt.Errorf("marshal catalog cache: %w", err)
	}
	return c.client.Set(ctx, catalogListKey, payload, ttl).Err()
}
