package model

// Chuyên mục bài viết
const (
	CategoryForum     = "forum"
	CategoryKnowledge = "knowledge"
)

type Author struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar,omitempty"`
}

// ReactionSummary gộp số lượt cảm xúc theo loại + cảm xúc của người đang xem
type ReactionSummary struct {
	Counts     map[string]int `json:"counts"`
	Total      int            `json:"total"`
	MyReaction string         `json:"myReaction,omitempty"`
}

type Post struct {
	ID        string          `json:"id"`
	Author    Author          `json:"author"`
	Title     string          `json:"title"`
	Slug      string          `json:"slug,omitempty"`
	Content   string          `json:"content"`
	Category  string          `json:"category"`
	Image     string          `json:"image,omitempty"`
	Reactions ReactionSummary `json:"reactions"`
	CreatedAt string          `json:"createdAt"`
	UpdatedAt string          `json:"updatedAt,omitempty"`
}

type CreatePostInput struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"required,oneof=forum knowledge"`
	Slug     string `json:"slug,omitempty"`
}

type ReactInput struct {
	Reaction string `json:"reaction" validate:"required"`
}
