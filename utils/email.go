package utils

import (
	"counter-backend/config"
	"net/smtp"
	"net/textproto"

	"github.com/jordan-wright/email"
)

// SendEmail 发送告警邮件，dataType 1 为纯文本，其它为 HTML
func SendEmail(data []byte, dataType int) error {
	e := &email.Email{
		To:      config.Config.Email.To,      // []string{"test@example.com"},
		Cc:      config.Config.Email.Cc,      // []string{"test@example.com"},
		From:    config.Config.Email.From,    // "Morph Counter <test@gmail.com>",
		Subject: config.Config.Email.Subject, //"Awesome Subject",
		Headers: textproto.MIMEHeader{},
	}
	if dataType == 1 {
		e.Text = data
	} else {
		e.HTML = data
	}
	return e.Send(config.Config.Email.Host+":"+config.Config.Email.Port, smtp.PlainAuth(
		"", config.Config.Email.Username, config.Config.Email.Pwd,
		config.Config.Email.Host))
}
