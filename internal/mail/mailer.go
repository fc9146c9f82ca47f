package mail

import (
	"fmt"
	"net/smtp"

	"marketplace/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer SMTP邮件通知
type Mailer struct {
	cfg config.SMTPConfig
}

// NewMailer 创建邮件通知服务
func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendApprovalResult 通知商家审核结果
func (m *Mailer) SendApprovalResult(to, shopName, action, reason string) error {
	e := email.NewEmail()
	e.From = m.cfg.From
	e.To = []string{to}
	e.Subject = fmt.Sprintf("店铺 %s 审核通知", shopName)

	body := fmt.Sprintf("您的店铺 %s 审核状态更新为：%s。", shopName, action)
	if reason != "" {
		body += fmt.Sprintf("\n原因：%s", reason)
	}
	e.Text = []byte(body)

	addr := m.cfg.Host + ":" + m.cfg.Port
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	return e.Send(addr, auth)
}
