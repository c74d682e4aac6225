package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"time"

	"petwell_client/config"
)

// Client là lớp bọc mỏng quanh API PetWell: gắn base URL, bearer token,
// chuẩn hoá lỗi. Không retry, không timeout riêng cho từng request —
// request hỏng báo một lần, người dùng tự thao tác lại.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// PetWell là client dùng chung, khởi tạo trong main qua Connect()
var PetWell *Client

func Connect() {
	PetWell = NewClient(config.ConfigDefault("PETWELL_API_URL", "http://localhost:8080"))
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP: &http.Client{
			Timeout: 25 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

// envelope là khung response chung của API: data + message
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// do gửi một request JSON và decode kết quả vào out (nếu khác nil)
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body any, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &Error{Transport: true, Message: FallbackMessage}
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, query), rd)
	if err != nil {
		return &Error{Transport: true, Message: FallbackMessage}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.prepare(req, token)

	return c.send(req, out)
}

// doMultipart gửi form multipart: một phần JSON (sub-object) + một file ảnh
func (c *Client) doMultipart(ctx context.Context, path, token, jsonField string, jsonValue any, fileField, fileName string, file io.Reader, out any) error {
	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)

	jb, err := json.Marshal(jsonValue)
	if err != nil {
		return &Error{Transport: true, Message: FallbackMessage}
	}
	if err := w.WriteField(jsonField, string(jb)); err != nil {
		return &Error{Transport: true, Message: FallbackMessage}
	}

	if file != nil {
		fw, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			return &Error{Transport: true, Message: FallbackMessage}
		}
		if _, err := io.Copy(fw, file); err != nil {
			return &Error{Transport: true, Message: FallbackMessage}
		}
	}
	if err := w.Close(); err != nil {
		return &Error{Transport: true, Message: FallbackMessage}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.buildURL(path, nil), buf)
	if err != nil {
		return &Error{Transport: true, Message: FallbackMessage}
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	c.prepare(req, token)

	return c.send(req, out)
}

func (c *Client) buildURL(path string, query url.Values) string {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) prepare(req *http.Request, token string) {
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &Error{Transport: true, Message: FallbackMessage}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Transport: true, Message: FallbackMessage}
	}

	var env envelope
	_ = json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// message nghiệp vụ của server được giữ nguyên văn
		msg := env.Message
		if msg == "" {
			msg = env.Error
		}
		if msg == "" {
			msg = FallbackMessage
		}
		return &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	payload := raw
	if len(env.Data) > 0 {
		payload = env.Data
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &Error{StatusCode: resp.StatusCode, Message: FallbackMessage}
	}
	return nil
}
