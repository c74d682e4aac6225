package utils

import (
	"fmt"
	"time"
)

// ICT múi giờ cố định của toàn hệ thống PetWell (+07:00)
var ICT = time.FixedZone("ICT", 7*3600)

// CombineDateTime ghép "YYYY-MM-DD" + "HH:mm" thành chuỗi ISO-8601
// với offset cố định +07:00, đúng định dạng API đặt lịch yêu cầu
func CombineDateTime(date, clock string) (string, error) {
	if date == "" || clock == "" {
		return "", fmt.Errorf("thiếu ngày hoặc giờ hẹn")
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, ICT)
	if err != nil {
		return "", fmt.Errorf("ngày giờ không hợp lệ: %s %s", date, clock)
	}
	return t.Format("2006-01-02T15:04:05+07:00"), nil
}

// ParseInstant đọc chuỗi thời gian của API về time.Time.
// Chuỗi hỏng trả về zero time (xếp lên đầu khi so sánh).
func ParseInstant(s string) time.Time {
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	// chuỗi không mang offset thì hiểu theo giờ ICT
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", s, ICT); err == nil {
		return t
	}
	return time.Time{}
}
