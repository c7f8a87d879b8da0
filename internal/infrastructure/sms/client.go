package sms

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"time"

	"hostdesk/internal/domain/sms"
	"hostdesk/internal/shared/config"
	"hostdesk/internal/shared/logger"
)

// smsEnvelope is the provider's XML request body. Text content is escaped by
// encoding/xml, so message bodies may safely contain markup characters.
type smsEnvelope struct {
	XMLName      xml.Name     `xml:"sms"`
	User         envelopeUser `xml:"user"`
	Source       string       `xml:"source"`
	Destinations destinations `xml:"destinations"`
	Message      string       `xml:"message"`
}

type envelopeUser struct {
	Username string `xml:"username"`
}

type destinations struct {
	Phone []destinationPhone `xml:"phone"`
}

type destinationPhone struct {
	ID    string `xml:"id,attr"`
	Value string `xml:",chardata"`
}

// smsResponse is the provider's XML reply. Status zero means accepted.
type smsResponse struct {
	XMLName xml.Name `xml:"sms"`
	Status  int      `xml:"status"`
	Message string   `xml:"message"`
}

// Client implements the SMS gateway port against an 019sms-style HTTP API.
type Client struct {
	apiURL     string
	token      string
	source     string
	user       string
	httpClient *http.Client
	logger     logger.Interface
}

func NewClient(cfg config.SMSConfig, logger logger.Interface) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiURL:     cfg.APIURL,
		token:      cfg.Token,
		source:     cfg.Source,
		user:       cfg.User,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Send posts one message to one destination. A gateway rejection is reported
// in the result, not as an error; errors are reserved for transport failures.
func (c *Client) Send(ctx context.Context, phone, message string) (*sms.SendResult, error) {
	if phone == "" {
		return nil, fmt.Errorf("destination phone is required")
	}
	if message == "" {
		return nil, fmt.Errorf("message is required")
	}
	if len([]rune(message)) > sms.MaxMessageLength {
		return nil, fmt.Errorf("message exceeds %d characters", sms.MaxMessageLength)
	}
	if c.token == "" {
		return nil, fmt.Errorf("sms gateway token is not configured")
	}

	envelope := smsEnvelope{
		User:   envelopeUser{Username: c.user},
		Source: c.source,
		Destinations: destinations{
			Phone: []destinationPhone{{Value: phone}},
		},
		Message: message,
	}

	body, err := xml.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sms envelope: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/xml")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach sms gateway: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return nil, fmt.Errorf("failed to read sms gateway response: %w", err)
	}

	result := &sms.SendResult{RawResponse: string(raw)}

	if resp.StatusCode != http.StatusOK {
		result.ErrMessage = fmt.Sprintf("gateway returned HTTP %d", resp.StatusCode)
		c.logger.Warnw("sms gateway rejected request",
			"status_code", resp.StatusCode,
			"phone", phone,
		)
		return result, nil
	}

	var parsed smsResponse
	if err := xml.Unmarshal(raw, &parsed); err != nil {
		result.ErrMessage = "unparseable gateway response"
		c.logger.Warnw("failed to parse sms gateway response", "error", err, "phone", phone)
		return result, nil
	}

	if parsed.Status != 0 {
		result.ErrMessage = parsed.Message
		c.logger.Warnw("sms gateway reported failure",
			"gateway_status", parsed.Status,
			"gateway_message", parsed.Message,
			"phone", phone,
		)
		return result, nil
	}

	result.Success = true
	c.logger.Debugw("sms accepted by gateway", "phone", phone)
	return result, nil
}
