package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// MessageBuilder dựng thông báo chấm công gửi cho các dashboard đang mở
type MessageBuilder struct {
	employeeName string
	status       string
	checkInTime  string
}

func NewMessageBuilder(employeeName, status, checkInTime string) *MessageBuilder {
	return &MessageBuilder{
		employeeName: employeeName,
		status:       status,
		checkInTime:  checkInTime,
	}
}

func (b *MessageBuilder) Build() string {
	return fmt.Sprintf("🔔 %s đã chấm công lúc %s (%s).", b.employeeName, b.checkInTime, b.status)
}
