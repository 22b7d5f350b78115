package notifyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент сервиса уведомлений
// Сбой уведомления не должен ронять операцию: вызывающая сторона
// логирует ошибку и продолжает работу
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// notification тело уведомления о событии с записью
type notification struct {
	UserID          int64  `json:"userId"`
	AppointmentID   int64  `json:"appointmentId"`
	BarberName      string `json:"barberName"`
	AppointmentDate string `json:"appointmentDate"`
	StartTime       string `json:"startTime"`
	Event           string `json:"event"`
}

// AppointmentCancelled уведомляет клиента об отмене записи
func (c *Client) AppointmentCancelled(ctx context.Context, appt *domain.Appointment) error {
	return c.send(ctx, appt, "cancelled")
}

// AppointmentRescheduled уведомляет клиента о переносе записи
func (c *Client) AppointmentRescheduled(ctx context.Context, appt *domain.Appointment) error {
	return c.send(ctx, appt, "rescheduled")
}

func (c *Client) send(ctx context.Context, appt *domain.Appointment, event string) error {
	payload := notification{
		UserID:          appt.UserID,
		AppointmentID:   appt.ID,
		BarberName:      appt.BarberName,
		AppointmentDate: appt.AppointmentDate.Format(domain.DateFormat),
		StartTime:       appt.StartTime.String(),
		Event:           event,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal notification: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/notifications", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	c.log.Info("Notification %s sent for appointment id=%d, user=%d", event, appt.ID, appt.UserID)
	return nil
}
