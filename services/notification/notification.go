package notification

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// SessionKey là key lưu id phiên trong melody.Session
const SessionKey = "sessionId"

// Các loại sự kiện gửi tới client của một phiên
const (
	EventCatalogReady       = "catalog_ready"
	EventCatalogUnavailable = "catalog_unavailable"
	EventCheckoutHandoff    = "checkout_handoff"
)

// Service gửi thông báo tới các kết nối websocket của một phiên
type Service interface {
	NotifySession(sessionID string, message Message) error
}

// Message là nội dung một thông báo
type Message struct {
	Event        string `json:"event"`
	SessionID    string `json:"sessionId"`
	State        string `json:"state"`
	Availability string `json:"availability,omitempty"`
	Text         string `json:"text,omitempty"`
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) NotifySession(sessionID string, message Message) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return s.m.BroadcastFilter(data, func(q *melody.Session) bool {
		id, ok := q.Get(SessionKey)
		return ok && id == sessionID
	})
}

// Nop bỏ qua mọi thông báo
type Nop struct{}

func (Nop) NotifySession(string, Message) error { return nil }

type MessageBuilder struct {
	message Message
}

func NewMessageBuilder(event, sessionID string) *MessageBuilder {
	return &MessageBuilder{message: Message{Event: event, SessionID: sessionID}}
}

func (b *MessageBuilder) WithState(state, availability string) *MessageBuilder {
	b.message.State = state
	b.message.Availability = availability
	return b
}

func (b *MessageBuilder) Build() Message {
	switch b.message.Event {
	case EventCatalogReady:
		b.message.Text = "🔔 Danh sách phòng đã sẵn sàng."
	case EventCatalogUnavailable:
		b.message.Text = "🔔 Không tải được danh sách phòng, vui lòng thử lại."
	case EventCheckoutHandoff:
		b.message.Text = "🔔 Giỏ hàng đã chuyển sang bước thanh toán."
	}
	return b.message
}
