package api

import (
	"context"

	"petwell_client/model"
)

func (c *Client) FetchCommentsByPost(ctx context.Context, token, postID string) ([]model.Comment, error) {
	var tree []model.Comment
	err := c.do(ctx, MethodOf("commentsByPost"), PathOf("commentsByPost", postID), token, nil, nil, &tree)
	if err != nil {
		return nil, err
	}
	return tree, nil
}

func (c *Client) AddComment(ctx context.Context, token, postID string, input model.AddCommentInput) (model.Comment, error) {
	var cmt model.Comment
	err := c.do(ctx, MethodOf("addComment"), PathOf("addComment", postID), token, nil, input, &cmt)
	return cmt, err
}

func (c *Client) ReactComment(ctx context.Context, token, commentID, reaction string) (model.ReactionSummary, error) {
	body := model.ReactInput{Reaction: reaction}

	var out model.ReactionSummary
	err := c.do(ctx, MethodOf("reactComment"), PathOf("reactComment", commentID), token, nil, body, &out)
	return out, err
}

func (c *Client) UpdateComment(ctx context.Context, token, commentID, content string) error {
	body := model.UpdateCommentInput{Content: content}
	return c.do(ctx, MethodOf("updateComment"), PathOf("updateComment", commentID), token, nil, body, nil)
}

func (c *Client) DeleteComment(ctx context.Context, token, commentID string) error {
	return c.do(ctx, MethodOf("deleteComment"), PathOf("deleteComment", commentID), token, nil, nil, nil)
}
