package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathOfFillsParams(t *testing.T) {
	assert.Equal(t, "/api/v1/appointments", PathOf("appointments"))
	assert.Equal(t, "/api/v1/appointments/ap9/cancel", PathOf("cancelAppointment", "ap9"))
	assert.Equal(t, "/api/v1/posts/p3/comments", PathOf("commentsByPost", "p3"))
	assert.Equal(t, "/api/v1/payments/ap9/url", PathOf("paymentURL", "ap9"))
}

func TestEveryEndpointHasMethod(t *testing.T) {
	for name, ep := range Endpoints {
		assert.NotEmpty(t, ep.Method, name)
		assert.NotEmpty(t, ep.Path, name)
	}
}

func TestQueryBuilders(t *testing.T) {
	q := NearbyClinicsQuery(10.762622, 106.660172)
	assert.Equal(t, "10.762622", q.Get("lat"))
	assert.Equal(t, "106.660172", q.Get("lng"))

	assert.Equal(t, "forum", PostsQuery("forum").Get("category"))

	assert.Empty(t, ServicesQuery(""))
	assert.Equal(t, "cl1", ServicesQuery("cl1").Get("clinicId"))
}
