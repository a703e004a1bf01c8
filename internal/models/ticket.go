package models

import (
	"time"

	"gorm.io/gorm"
)

type SupportTicket struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Subject   string         `gorm:"size:255;not null" json:"subject"`
	Message   string         `gorm:"type:text" json:"message"`
	Priority  string         `gorm:"size:16;default:'NORMAL'" json:"priority"` // LOW, NORMAL, HIGH
	Status    string         `gorm:"size:16;default:'OPEN';index" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User    User          `gorm:"foreignKey:UserID" json:"-"`
	Replies []TicketReply `gorm:"foreignKey:TicketID" json:"replies,omitempty"`
}

func (SupportTicket) TableName() string { return "support_tickets" }

type TicketReply struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	TicketID  uint           `gorm:"not null;index" json:"ticket_id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Message   string         `gorm:"type:text;not null" json:"message"`
	FromAdmin bool           `gorm:"default:false" json:"from_admin"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `json:"-"`

	Ticket SupportTicket `gorm:"foreignKey:TicketID" json:"-"`
	User   User          `gorm:"foreignKey:UserID" json:"-"`
}

func (TicketReply) TableName() string { return "ticket_replies" }
