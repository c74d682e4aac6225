package store

import (
	"petwell_client/model"
)

// CommentSlice cache cây bình luận theo từng bài viết.
// React/update/delete tìm đúng một nút theo id ở bất kỳ độ sâu nào và chỉ
// chạm vào nhánh chứa nút đó; hai thao tác cùng id thì ai ghi sau thắng.
type CommentSlice struct {
	Comments map[string][]model.Comment `json:"comments"` // postId → cây bình luận
	Loading  bool                       `json:"loading"`
	Error    string                     `json:"error,omitempty"`
}

// SetComments thay trọn cây bình luận của một bài viết
func (s *CommentSlice) SetComments(postID string, tree []model.Comment) {
	if s.Comments == nil {
		s.Comments = map[string][]model.Comment{}
	}
	s.Comments[postID] = tree
	s.Error = ""
}

// AddComment nối bình luận mới vào cuối danh sách gốc của bài viết,
// đúng thứ tự người dùng gửi (reply lồng nhau do server gắn parent)
func (s *CommentSlice) AddComment(postID string, cmt model.Comment) {
	if s.Comments == nil {
		s.Comments = map[string][]model.Comment{}
	}
	s.Comments[postID] = append(s.Comments[postID], cmt)
}

// ReactToComment thay các trường cảm xúc của đúng nút commentID.
// Trả về false khi không tìm thấy nút.
func (s *CommentSlice) ReactToComment(postID, commentID string, reactions model.ReactionSummary) bool {
	return patchComment(s.Comments[postID], commentID, func(c *model.Comment) {
		c.Reactions = reactions
	})
}

// UpdateCommentContent chỉ sửa nội dung của đúng nút commentID
func (s *CommentSlice) UpdateCommentContent(postID, commentID, content string) bool {
	return patchComment(s.Comments[postID], commentID, func(c *model.Comment) {
		c.Content = content
	})
}

// DeleteComment gỡ một nút ở bất kỳ độ sâu nào, dựng lại mảng Replies
// của cha mà không đổi thứ tự các nút còn lại
func (s *CommentSlice) DeleteComment(postID, commentID string) bool {
	tree, removed := removeComment(s.Comments[postID], commentID)
	if removed {
		s.Comments[postID] = tree
	}
	return removed
}

// SetError ghi lỗi fetch và xoá cây của bài viết đó về rỗng
func (s *CommentSlice) SetError(postID, msg string) {
	if s.Comments == nil {
		s.Comments = map[string][]model.Comment{}
	}
	s.Comments[postID] = []model.Comment{}
	s.Error = msg
}

func (s *CommentSlice) SetLoading(v bool) {
	s.Loading = v
}

// patchComment đệ quy tìm nút theo id, áp patch lên đúng một nút
func patchComment(list []model.Comment, id string, patch func(*model.Comment)) bool {
	for i := range list {
		if list[i].ID == id {
			patch(&list[i])
			return true
		}
		if patchComment(list[i].Replies, id, patch) {
			return true
		}
	}
	return false
}

// removeComment đệ quy gỡ nút theo id, giữ nguyên thứ tự anh em còn lại
func removeComment(list []model.Comment, id string) ([]model.Comment, bool) {
	removed := false
	out := make([]model.Comment, 0, len(list))
	for _, cmt := range list {
		if !removed && cmt.ID == id {
			removed = true
			continue
		}
		if !removed {
			if replies, ok := removeComment(cmt.Replies, id); ok {
				cmt.Replies = replies
				removed = true
			}
		}
		out = append(out, cmt)
	}
	return out, removed
}
