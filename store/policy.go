package store

import "time"

// CachePolicy là luật staleness tách riêng để test độc lập: quyết định
// một chuyên mục bài viết có phải fetch lại trước khi hiển thị không.
// Luật được xét cơ hội (lúc đổi chuyên mục / mở trang), không có timer nền.
type CachePolicy struct {
	TTL time.Duration
}

// DefaultPostPolicy: cache bài viết coi là cũ sau 5 phút
var DefaultPostPolicy = CachePolicy{TTL: 5 * time.Minute}

// NeedsRefresh trả về true khi BẤT KỲ điều nào đúng:
// cờ NeedRefresh bật, mảng chuyên mục đang rỗng, chưa fetch lần nào,
// hoặc lần fetch cuối đã quá TTL so với đồng hồ lúc gọi.
func (p CachePolicy) NeedsRefresh(s *PostSlice, category string, now time.Time) bool {
	if s.NeedRefresh {
		return true
	}
	if len(s.Category(category)) == 0 {
		return true
	}
	if s.LastFetchTime == 0 {
		return true
	}
	return now.UnixMilli()-s.LastFetchTime > p.TTL.Milliseconds()
}
