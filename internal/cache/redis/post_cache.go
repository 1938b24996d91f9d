package redis

import (
	"context"
	"fmt"

	"microblog-service/internal/logger"
	"microblog-service/internal/model"
)

type PostCache struct {
	client *Client
	log    *logger.Logger
}

func NewPostCache(client *Client, log *logger.Logger) *PostCache {
	return &PostCache{client: client, log: log}
}

func postKey(id int64) string {
	return fmt.Sprintf("post:%d", id)
}

func (c *PostCache) GetPost(ctx context.Context, id int64) (*model.Post, error) {
	var post model.Post
	if err := c.client.Get(ctx, postKey(id), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *PostCache) SetPost(ctx context.Context, post *model.Post) error {
	return c.client.Set(ctx, postKey(post.ID), post)
}
