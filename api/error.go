package api

import (
	"errors"
	"fmt"
)

// FallbackMessage dùng khi server không trả message có cấu trúc
const FallbackMessage = "Đã có lỗi xảy ra, vui lòng thử lại sau"

// Error chuẩn hoá mọi lỗi từ API PetWell về một dạng duy nhất.
// Message của server được giữ nguyên văn khi có; lỗi mạng chỉ khác
// lỗi nghiệp vụ ở chỗ không có message từ server (Transport=true).
type Error struct {
	StatusCode int
	Message    string
	Transport  bool
}

func (e *Error) Error() string {
	if e.Transport {
		return fmt.Sprintf("petwell api: lỗi kết nối: %s", e.Message)
	}
	return fmt.Sprintf("petwell api: status=%d: %s", e.StatusCode, e.Message)
}

// UserMessage trả về câu thông báo hiển thị cho người dùng
func UserMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if err != nil {
		return FallbackMessage
	}
	return ""
}

func IsTransport(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Transport
}
