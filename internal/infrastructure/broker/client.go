package broker

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"photoshare/internal/domain/apperror"
)

type Client struct {
	redis  *redis.Client
	stream string
	group  string
}

// NewClient connects to redis and makes sure the consumer group exists.
// The group starts at "0" so entries added before the first consumer are not skipped.
func NewClient(cfg Config) (*Client, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, fmt.Errorf("%w: parse broker uri: %w", apperror.ErrConnection, err)
	}

	rdb := redis.NewClient(opt)
	ctx := context.Background()

	err = rdb.XGroupCreateMkStream(ctx, cfg.StreamName, cfg.GroupName, "0").Err()
	if err != nil && !isBusyGroup(err) {
		_ = rdb.Close()

		return nil, fmt.Errorf("%w: create consumer group: %w", apperror.ErrConnection, err)
	}

	return &Client{
		redis:  rdb,
		stream: cfg.StreamName,
		group:  cfg.GroupName,
	}, nil
}

func (c *Client) Close() error {
	return c.redis.Close()
}

func isBusyGroup(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "BUSYGROUP")
}
