package api

import (
	"context"
	"io"

	"petwell_client/model"
)

func (c *Client) FetchPosts(ctx context.Context, token, category string) ([]model.Post, error) {
	var list []model.Post
	err := c.do(ctx, MethodOf("posts"), PathOf("posts"), token, PostsQuery(category), nil, &list)
	if err != nil {
		return nil, err
	}
	return list, nil
}

// CreatePost gửi multipart: phần "post" là JSON, phần "image" là file đính kèm
func (c *Client) CreatePost(ctx context.Context, token string, input model.CreatePostInput, imageName string, image io.Reader) (model.Post, error) {
	var post model.Post
	err := c.doMultipart(ctx, PathOf("createPost"), token, "post", input, "image", imageName, image, &post)
	return post, err
}

func (c *Client) ReactPost(ctx context.Context, token, postID, reaction string) (model.ReactionSummary, error) {
	body := model.ReactInput{Reaction: reaction}

	var out model.ReactionSummary
	err := c.do(ctx, MethodOf("reactPost"), PathOf("reactPost", postID), token, nil, body, &out)
	return out, err
}
