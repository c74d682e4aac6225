package store

import (
	"testing"
	"time"

	"petwell_client/model"

	"github.com/stretchr/testify/assert"
)

func posts(n int) []model.Post {
	out := make([]model.Post, n)
	for i := range out {
		out[i] = model.Post{ID: string(rune('a' + i))}
	}
	return out
}

func TestNeedsRefreshWhenStale(t *testing.T) {
	now := time.Now()

	s := &PostSlice{}
	s.SetPosts(model.CategoryForum, posts(3), now.Add(-6*time.Minute))

	// lastFetchTime = now − 6 phút, mảng không rỗng → phải fetch lại
	assert.True(t, DefaultPostPolicy.NeedsRefresh(s, model.CategoryForum, now))
}

func TestNoRefreshWhenFresh(t *testing.T) {
	now := time.Now()

	s := &PostSlice{}
	s.SetPosts(model.CategoryForum, posts(3), now.Add(-1*time.Minute))

	// fetch 1 phút trước, mảng không rỗng, needRefresh hạ → dùng cache
	assert.False(t, DefaultPostPolicy.NeedsRefresh(s, model.CategoryForum, now))
}

func TestNeedsRefreshWhenFlagSet(t *testing.T) {
	now := time.Now()

	s := &PostSlice{}
	s.SetPosts(model.CategoryForum, posts(3), now)
	s.Invalidate()

	assert.True(t, DefaultPostPolicy.NeedsRefresh(s, model.CategoryForum, now))
}

func TestNeedsRefreshWhenCategoryEmpty(t *testing.T) {
	now := time.Now()

	s := &PostSlice{}
	s.SetPosts(model.CategoryForum, posts(3), now)

	// forum vừa fetch nhưng knowledge đang rỗng → đổi chuyên mục phải fetch
	assert.False(t, DefaultPostPolicy.NeedsRefresh(s, model.CategoryForum, now))
	assert.True(t, DefaultPostPolicy.NeedsRefresh(s, model.CategoryKnowledge, now))
}

func TestNeedsRefreshWhenNeverFetched(t *testing.T) {
	s := &PostSlice{Forum: posts(2)} // rehydrate cũ không có mốc fetch
	assert.True(t, DefaultPostPolicy.NeedsRefresh(s, model.CategoryForum, time.Now()))
}

func TestSetPostsLowersFlagAndStampsTime(t *testing.T) {
	now := time.Now()

	s := &PostSlice{NeedRefresh: true}
	s.SetPosts(model.CategoryKnowledge, posts(2), now)

	assert.False(t, s.NeedRefresh)
	assert.Equal(t, now.UnixMilli(), s.LastFetchTime)
	assert.Len(t, s.Knowledge, 2)
	assert.Empty(t, s.Forum)
}

func TestReactToPostPatchesReactionFields(t *testing.T) {
	now := time.Now()

	s := &PostSlice{}
	s.SetPosts(model.CategoryForum, []model.Post{
		{ID: "p1", Content: "một"},
		{ID: "p2", Content: "hai"},
	}, now)

	sum := model.ReactionSummary{Counts: map[string]int{"like": 3}, Total: 3, MyReaction: "like"}
	assert.True(t, s.ReactToPost("p2", sum))

	assert.Equal(t, sum, s.Forum[1].Reactions)
	assert.Zero(t, s.Forum[0].Reactions.Total, "bài khác không bị chạm")
	assert.False(t, s.ReactToPost("missing", sum))
}

func TestSetErrorEmptiesCategory(t *testing.T) {
	now := time.Now()

	s := &PostSlice{}
	s.SetPosts(model.CategoryForum, posts(3), now)

	s.SetError(model.CategoryForum, "mất mạng")
	assert.Empty(t, s.Forum)
	assert.Equal(t, "mất mạng", s.Error)
}
