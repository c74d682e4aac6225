package store

import (
	"sort"

	"petwell_client/model"
	"petwell_client/utils"
)

// AppointmentSlice cache danh sách lịch hẹn của một người dùng.
// Bất biến hiển thị: mọi lịch Cancelled nằm sau lịch chưa huỷ, trong từng
// nhóm xếp tăng dần theo thời điểm hẹn. Mọi mutation đều sắp lại.
type AppointmentSlice struct {
	Appointments []model.Appointment `json:"appointments"`
	Loading      bool                `json:"loading"`
}

// SetAppointments thay cả danh sách (sau một lần re-fetch đầy đủ)
func (s *AppointmentSlice) SetAppointments(list []model.Appointment) {
	s.Appointments = list
	s.sortAppointments()
}

// AddAppointment nối thêm một lịch vừa tạo rồi sắp lại
func (s *AppointmentSlice) AddAppointment(item model.Appointment) {
	s.Appointments = append(s.Appointments, item)
	s.sortAppointments()
}

// UpdateAppointmentStatus đổi trạng thái tại chỗ theo id; id không có thì bỏ qua
func (s *AppointmentSlice) UpdateAppointmentStatus(id, status string) {
	for i := range s.Appointments {
		if s.Appointments[i].ID == id {
			s.Appointments[i].Status = status
			s.sortAppointments()
			return
		}
	}
}

func (s *AppointmentSlice) SetLoading(v bool) {
	s.Loading = v
}

// Reset đưa cache về rỗng khi fetch thất bại
func (s *AppointmentSlice) Reset() {
	s.Appointments = []model.Appointment{}
}

func (s *AppointmentSlice) sortAppointments() {
	sort.SliceStable(s.Appointments, func(i, j int) bool {
		a, b := s.Appointments[i], s.Appointments[j]
		aCancelled := a.Status == model.StatusCancelled
		bCancelled := b.Status == model.StatusCancelled
		if aCancelled != bCancelled {
			return bCancelled
		}
		return utils.ParseInstant(a.AppointmentDate).Before(utils.ParseInstant(b.AppointmentDate))
	})
}
