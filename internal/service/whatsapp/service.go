package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// host WhatsApp deep-link хост
	host = "https://wa.me"

	// greeting первая строка сообщения водителю
	greeting = "Olá, Leticia! Gostaria de agendar uma viagem."
)

// Message данные подтвержденного бронирования для сообщения водителю.
// Порядок и подписи полей - часть контракта: получатель разбирает
// сообщение по визуальной структуре
type Message struct {
	AppointmentID  int64
	CustomerName   string
	CustomerPhone  string
	StartAddress   string
	Destination    string
	FormattedDate  string // DD/MM/YYYY
	Slot           string // HH:MM
	FormattedPrice string // R$ D,DD
}

// Builder строит WhatsApp deep-link с предзаполненным сообщением
type Builder struct {
	driverPhone string // только цифры, с кодом страны
}

// NewBuilder создает Builder для указанного номера водителя
func NewBuilder(driverPhone string) *Builder {
	return &Builder{driverPhone: driverPhone}
}

// BuildLink возвращает ссылку вида https://wa.me/<phone>?text=<encoded>
func (b *Builder) BuildLink(msg Message) string {
	return fmt.Sprintf("%s/%s?text=%s", host, b.driverPhone, encodeText(b.composeText(msg)))
}

// encodeText кодирует текст для query параметра, пробелы как %20
// (как в deep-link ссылках, а не как в HTML формах)
func encodeText(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func (b *Builder) composeText(msg Message) string {
	parts := []string{
		greeting,
		"",
		fmt.Sprintf("*ID do Agendamento:* %d", msg.AppointmentID),
		"",
		"*Dados da Cliente:*",
		fmt.Sprintf("*Nome:* %s", msg.CustomerName),
		fmt.Sprintf("*Telefone:* %s", msg.CustomerPhone),
		"",
		"*Detalhes da Viagem:*",
		fmt.Sprintf("*Partida:* %s", msg.StartAddress),
		fmt.Sprintf("*Destino:* %s", msg.Destination),
		fmt.Sprintf("*Data:* %s", msg.FormattedDate),
		fmt.Sprintf("*Horário:* %s", msg.Slot),
		fmt.Sprintf("*Valor Estimado:* %s", msg.FormattedPrice),
	}
	return strings.Join(parts, "\n")
}
