package api

import (
	"context"
	"net/url"

	"petwell_client/model"
)

type paymentURLRequest struct {
	PaymentType string `json:"paymentType"` // full | deposit
}

type paymentURLResponse struct {
	PaymentURL string `json:"paymentUrl"`
}

// CreatePaymentURL xin URL cổng thanh toán cho một lịch hẹn đã tạo
func (c *Client) CreatePaymentURL(ctx context.Context, token, appointmentID, paymentType string) (string, error) {
	body := paymentURLRequest{PaymentType: paymentType}

	var out paymentURLResponse
	if err := c.do(ctx, MethodOf("paymentURL"), PathOf("paymentURL", appointmentID), token, nil, body, &out); err != nil {
		return "", err
	}
	if out.PaymentURL == "" {
		return "", &Error{StatusCode: 502, Message: "Không nhận được URL thanh toán từ cổng"}
	}
	return out.PaymentURL, nil
}

// VerifyPaymentReturn chuyển nguyên query cổng trả về cho server xác minh.
// Client không tự kiểm chữ ký — việc đó thuộc về server.
func (c *Client) VerifyPaymentReturn(ctx context.Context, token string, query url.Values) (model.PaymentVerifyResult, error) {
	var out model.PaymentVerifyResult
	err := c.do(ctx, MethodOf("verifyPayment"), PathOf("verifyPayment"), token, query, nil, &out)
	return out, err
}
