package model

// Comment là một nút trong cây bình luận, trả lời lồng nhau qua Replies
type Comment struct {
	ID        string          `json:"id"`
	Author    Author          `json:"author"`
	Content   string          `json:"content"`
	Reactions ReactionSummary `json:"reactions"`
	Replies   []Comment       `json:"replies"`
	CreatedAt string          `json:"createdAt"`
	UpdatedAt string          `json:"updatedAt,omitempty"`
}

type AddCommentInput struct {
	Content  string `json:"content" validate:"required"`
	ParentID string `json:"parentId,omitempty"`
}

type UpdateCommentInput struct {
	Content string `json:"content" validate:"required"`
}
