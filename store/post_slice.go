package store

import (
	"time"

	"petwell_client/model"
)

// PostSlice cache bài viết hai chuyên mục: diễn đàn và kiến thức
type PostSlice struct {
	Forum         []model.Post `json:"forum"`
	Knowledge     []model.Post `json:"knowledge"`
	LastFetchTime int64        `json:"lastFetchTime"` // unix ms, 0 = chưa fetch lần nào
	NeedRefresh   bool         `json:"needRefresh"`
	Loading       bool         `json:"loading"`
	Error         string       `json:"error,omitempty"`
}

// Category trả về mảng bài viết của chuyên mục đang xem
func (s *PostSlice) Category(category string) []model.Post {
	if category == model.CategoryKnowledge {
		return s.Knowledge
	}
	return s.Forum
}

// SetPosts thay danh sách một chuyên mục, ghi mốc fetch và hạ cờ refresh
func (s *PostSlice) SetPosts(category string, list []model.Post, now time.Time) {
	if category == model.CategoryKnowledge {
		s.Knowledge = list
	} else {
		s.Forum = list
	}
	s.LastFetchTime = now.UnixMilli()
	s.NeedRefresh = false
	s.Error = ""
}

// Invalidate buộc lần xem kế tiếp phải fetch lại
func (s *PostSlice) Invalidate() {
	s.NeedRefresh = true
}

// ReactToPost thay các trường cảm xúc của một bài viết trong cache
func (s *PostSlice) ReactToPost(postID string, reactions model.ReactionSummary) bool {
	found := false
	for _, list := range [][]model.Post{s.Forum, s.Knowledge} {
		for i := range list {
			if list[i].ID == postID {
				list[i].Reactions = reactions
				found = true
			}
		}
	}
	return found
}

// SetError ghi lỗi fetch và đưa chuyên mục đó về rỗng
func (s *PostSlice) SetError(category, msg string) {
	if category == model.CategoryKnowledge {
		s.Knowledge = []model.Post{}
	} else {
		s.Forum = []model.Post{}
	}
	s.Error = msg
}

func (s *PostSlice) SetLoading(v bool) {
	s.Loading = v
}
