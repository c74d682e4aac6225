package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

const storeKeyPrefix = "petwell:store:"

// Store là toàn bộ cache phía client của một người dùng: ba slice độc lập,
// được persist nguyên khối dưới đúng một key (giống blanket persistence
// của bản web). Nội dung rehydrate luôn bị coi là có thể đã cũ — các luật
// refresh của từng slice vẫn áp dụng.
type Store struct {
	mu sync.Mutex

	Appointments AppointmentSlice `json:"appointments"`
	Posts        PostSlice        `json:"posts"`
	Comments     CommentSlice     `json:"comments"`
}

// Manager giữ store theo từng người dùng, rehydrate từ Redis lần chạm đầu.
// rdb có thể nil (chạy không persistence, ví dụ trong test).
type Manager struct {
	rdb *redis.Client

	mu     sync.Mutex
	stores map[uint]*Store
}

// Mgr là manager dùng chung, khởi tạo trong main
var Mgr *Manager

func Init(rdb *redis.Client) {
	Mgr = NewManager(rdb)
}

func NewManager(rdb *redis.Client) *Manager {
	return &Manager{
		rdb:    rdb,
		stores: map[uint]*Store{},
	}
}

func StoreKey(userID uint) string {
	return fmt.Sprintf("%s%d", storeKeyPrefix, userID)
}

// ForUser trả về store của một người dùng, dựng lại từ Redis nếu chưa có
func (m *Manager) ForUser(ctx context.Context, userID uint) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if st, ok := m.stores[userID]; ok {
		return st
	}

	st := &Store{}
	if m.rdb != nil {
		raw, err := m.rdb.Get(ctx, StoreKey(userID)).Result()
		if err == nil {
			if err := json.Unmarshal([]byte(raw), st); err != nil {
				log.Printf("store hỏng cho user %d, bỏ qua: %v", userID, err)
				st = &Store{}
			}
		}
	}
	// cờ loading không mang qua phiên mới
	st.Appointments.Loading = false
	st.Posts.Loading = false
	st.Comments.Loading = false

	m.stores[userID] = st
	return st
}

// Update khoá store, chạy mutation rồi ghi nguyên khối xuống Redis
func (m *Manager) Update(ctx context.Context, userID uint, fn func(*Store)) {
	st := m.ForUser(ctx, userID)
	st.mu.Lock()
	fn(st)
	raw, err := json.Marshal(st)
	st.mu.Unlock()

	if err != nil || m.rdb == nil {
		return
	}
	if err := m.rdb.Set(ctx, StoreKey(userID), raw, 0).Err(); err != nil {
		// persistence là best-effort, cache trong RAM vẫn đúng
		log.Printf("không ghi được store user %d xuống redis: %v", userID, err)
	}
}

// View khoá store và chạy một hàm chỉ đọc
func (m *Manager) View(ctx context.Context, userID uint, fn func(*Store)) {
	st := m.ForUser(ctx, userID)
	st.mu.Lock()
	defer st.mu.Unlock()
	fn(st)
}
