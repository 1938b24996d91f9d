package redis

import (
	"context"
	"fmt"

	"microblog-service/internal/logger"
	"microblog-service/internal/model"
)

type UserCache struct {
	client *Client
	log    *logger.Logger
}

func NewUserCache(client *Client, log *logger.Logger) *UserCache {
	return &UserCache{client: client, log: log}
}

func userKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

func (c *UserCache) GetUser(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := c.client.Get(ctx, userKey(id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *UserCache) SetUser(ctx context.Context, user *model.User) error {
	return c.client.Set(ctx, userKey(user.ID), user)
}
