package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petwell_client/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.FetchAppointments(context.Background(), "token123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer token123", gotAuth)
}

func TestDoUnwrapsDataEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":"a1","status":"Pending"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	list, err := c.FetchAppointments(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a1", list[0].ID)
}

func TestDoDecodesBareBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"a1"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	list, err := c.FetchAppointments(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestBusinessErrorMessagePassedVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(409)
		w.Write([]byte(`{"message":"Khung giờ này đã có người đặt"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.FetchAppointments(context.Background(), "tok")
	require.Error(t, err)

	apiErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, 409, apiErr.StatusCode)
	assert.Equal(t, "Khung giờ này đã có người đặt", apiErr.Message)
	assert.False(t, apiErr.Transport)
	assert.Equal(t, "Khung giờ này đã có người đặt", UserMessage(err))
}

func TestErrorWithoutStructuredMessageUsesFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
		w.Write([]byte(`boom`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.FetchAppointments(context.Background(), "tok")
	require.Error(t, err)
	assert.Equal(t, FallbackMessage, UserMessage(err))
}

func TestTransportErrorIsMarked(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // đóng ngay để request hỏng ở tầng mạng

	c := NewClient(srv.URL)
	_, err := c.FetchAppointments(context.Background(), "tok")
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.Equal(t, FallbackMessage, UserMessage(err))
}

func TestCheckTimeAvailabilityExplicitSignal(t *testing.T) {
	available := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if available {
			w.Write([]byte(`{"available":true}`))
		} else {
			w.Write([]byte(`{"available":false,"message":"Bác sĩ bận khung giờ này"}`))
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	require.NoError(t, c.CheckTimeAvailability(context.Background(), "tok", "2026-03-10T14:30:00+07:00", "clinic1"))

	available = false
	err := c.CheckTimeAvailability(context.Background(), "tok", "2026-03-10T14:30:00+07:00", "clinic1")
	require.Error(t, err)
	assert.Equal(t, "Bác sĩ bận khung giờ này", UserMessage(err))
}

func TestCreatePostSendsMultipart(t *testing.T) {
	var gotPost string
	var gotImage []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotPost = r.FormValue("post")

		f, _, err := r.FormFile("image")
		require.NoError(t, err)
		defer f.Close()
		buf := make([]byte, 8)
		n, _ := f.Read(buf)
		gotImage = buf[:n]

		w.Write([]byte(`{"data":{"id":"p1","slug":"meo-bo-an"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	post, err := c.CreatePost(context.Background(), "tok", model.CreatePostInput{
		Title:    "Mèo bỏ ăn",
		Content:  "nên làm gì?",
		Category: model.CategoryForum,
		Slug:     "meo-bo-an",
	}, "cat.jpg", strings.NewReader("fakejpeg"))
	require.NoError(t, err)

	assert.Equal(t, "p1", post.ID)
	assert.Contains(t, gotPost, `"meo-bo-an"`)
	assert.Equal(t, []byte("fakejpeg"), gotImage)
}

func TestCreatePaymentURLRequiresURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"paymentUrl":""}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.CreatePaymentURL(context.Background(), "tok", "ap1", model.PaymentTypeDeposit)
	require.Error(t, err)
}
