package api

import (
	"fmt"
	"net/url"
	"strconv"
)

// Endpoint ánh xạ một thao tác logic sang (path, method) trên API PetWell
type Endpoint struct {
	Path   string
	Method string
}

// Endpoints là bảng tra tĩnh: tên thao tác → endpoint.
// Path chứa %s ở chỗ cần tham số, build qua các hàm *Path bên dưới.
var Endpoints = map[string]Endpoint{
	"appointments":      {"/api/v1/appointments", "GET"},
	"createAppointment": {"/api/v1/appointments", "POST"},
	"cancelAppointment": {"/api/v1/appointments/%s/cancel", "PATCH"},
	"checkAvailability": {"/api/v1/appointments/check-availability", "POST"},

	"paymentURL":    {"/api/v1/payments/%s/url", "POST"},
	"verifyPayment": {"/api/v1/payments/verify", "GET"},

	"posts":      {"/api/v1/posts", "GET"},
	"createPost": {"/api/v1/posts", "POST"},
	"reactPost":  {"/api/v1/posts/%s/react", "POST"},

	"commentsByPost": {"/api/v1/posts/%s/comments", "GET"},
	"addComment":     {"/api/v1/posts/%s/comments", "POST"},
	"reactComment":   {"/api/v1/comments/%s/react", "POST"},
	"updateComment":  {"/api/v1/comments/%s", "PUT"},
	"deleteComment":  {"/api/v1/comments/%s", "DELETE"},

	"clinics":       {"/api/v1/clinics", "GET"},
	"nearbyClinics": {"/api/v1/clinics/nearby", "GET"},
	"services":      {"/api/v1/services", "GET"},
	"serviceById":   {"/api/v1/services/%s", "GET"},
	"pets":          {"/api/v1/pets", "GET"},
}

func PathOf(name string, params ...any) string {
	ep := Endpoints[name]
	if len(params) == 0 {
		return ep.Path
	}
	return fmt.Sprintf(ep.Path, params...)
}

func MethodOf(name string) string {
	return Endpoints[name].Method
}

// NearbyClinicsQuery build query lat/lng cho tìm phòng khám gần đây
func NearbyClinicsQuery(lat, lng float64) url.Values {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	return q
}

// PostsQuery build query lọc bài viết theo chuyên mục
func PostsQuery(category string) url.Values {
	q := url.Values{}
	q.Set("category", category)
	return q
}

// ServicesQuery build query lọc dịch vụ theo phòng khám
func ServicesQuery(clinicID string) url.Values {
	q := url.Values{}
	if clinicID != "" {
		q.Set("clinicId", clinicID)
	}
	return q
}
