package store

import (
	"testing"

	"petwell_client/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cây mẫu: c1 → c2 → c3 → c4 (ba tầng reply), kèm anh em ở từng tầng
func sampleTree() []model.Comment {
	return []model.Comment{
		{
			ID: "c1", Content: "gốc",
			Reactions: model.ReactionSummary{Total: 1, Counts: map[string]int{"like": 1}},
			Replies: []model.Comment{
				{
					ID: "c2", Content: "tầng một",
					Replies: []model.Comment{
						{
							ID: "c3", Content: "tầng hai",
							Replies: []model.Comment{
								{ID: "c4", Content: "tầng ba"},
							},
						},
						{ID: "c3b", Content: "anh em tầng hai"},
					},
				},
			},
		},
		{ID: "c5", Content: "gốc thứ hai"},
	}
}

func TestReactToCommentPatchesOnlyTargetNode(t *testing.T) {
	s := &CommentSlice{}
	s.SetComments("p1", sampleTree())

	newSum := model.ReactionSummary{
		Counts:     map[string]int{"love": 2},
		Total:      2,
		MyReaction: "love",
	}
	ok := s.ReactToComment("p1", "c4", newSum)
	require.True(t, ok)

	tree := s.Comments["p1"]
	c4 := tree[0].Replies[0].Replies[0].Replies[0]
	assert.Equal(t, newSum, c4.Reactions)
	assert.Equal(t, "tầng ba", c4.Content, "nội dung nút đích không được đổi")

	// tổ tiên và anh em giữ nguyên
	expected := sampleTree()
	expected[0].Replies[0].Replies[0].Replies[0].Reactions = newSum
	assert.Equal(t, expected, tree)
}

func TestUpdateCommentContentOnly(t *testing.T) {
	s := &CommentSlice{}
	s.SetComments("p1", sampleTree())

	ok := s.UpdateCommentContent("p1", "c3", "đã sửa")
	require.True(t, ok)

	c3 := s.Comments["p1"][0].Replies[0].Replies[0]
	assert.Equal(t, "đã sửa", c3.Content)
	assert.Equal(t, "c4", c3.Replies[0].ID, "reply con không được mất")
}

func TestDeleteMiddleReplyPreservesSiblingOrder(t *testing.T) {
	tree := []model.Comment{
		{
			ID: "root",
			Replies: []model.Comment{
				{ID: "r1"}, {ID: "r2"}, {ID: "r3"}, {ID: "r4"}, {ID: "r5"},
			},
		},
	}
	s := &CommentSlice{}
	s.SetComments("p1", tree)

	ok := s.DeleteComment("p1", "r3")
	require.True(t, ok)

	replies := s.Comments["p1"][0].Replies
	require.Len(t, replies, 4)
	ids := []string{replies[0].ID, replies[1].ID, replies[2].ID, replies[3].ID}
	assert.Equal(t, []string{"r1", "r2", "r4", "r5"}, ids)
}

func TestDeleteNestedComment(t *testing.T) {
	s := &CommentSlice{}
	s.SetComments("p1", sampleTree())

	ok := s.DeleteComment("p1", "c3")
	require.True(t, ok)

	replies := s.Comments["p1"][0].Replies[0].Replies
	require.Len(t, replies, 1)
	assert.Equal(t, "c3b", replies[0].ID)
}

func TestPatchUnknownCommentReturnsFalse(t *testing.T) {
	s := &CommentSlice{}
	s.SetComments("p1", sampleTree())

	assert.False(t, s.ReactToComment("p1", "missing", model.ReactionSummary{}))
	assert.False(t, s.UpdateCommentContent("p1", "missing", "x"))
	assert.False(t, s.DeleteComment("p1", "missing"))
}

func TestAddCommentAppendsAtTopLevel(t *testing.T) {
	s := &CommentSlice{}
	s.SetComments("p1", sampleTree())

	s.AddComment("p1", model.Comment{ID: "c9", Content: "mới"})

	tree := s.Comments["p1"]
	require.Len(t, tree, 3)
	assert.Equal(t, "c9", tree[2].ID)
}

func TestOperationsOnDifferentPostsAreIsolated(t *testing.T) {
	s := &CommentSlice{}
	s.SetComments("p1", sampleTree())
	s.SetComments("p2", []model.Comment{{ID: "x1"}})

	require.True(t, s.DeleteComment("p2", "x1"))

	assert.Len(t, s.Comments["p2"], 0)
	assert.Equal(t, sampleTree(), s.Comments["p1"], "bài viết khác không bị chạm")
}

func TestSetErrorClearsTree(t *testing.T) {
	s := &CommentSlice{}
	s.SetComments("p1", sampleTree())

	s.SetError("p1", "máy chủ lỗi")
	assert.Empty(t, s.Comments["p1"])
	assert.Equal(t, "máy chủ lỗi", s.Error)
}
