package utils

import (
	"bytes"
	"html/template"
	"log"
	"strconv"

	"github.com/veejvn/agricultural-serving-platform/config"
	"gopkg.in/gomail.v2"
)

// VerificationEmailData dữ liệu cho template email mã xác thực
type VerificationEmailData struct {
	Code      string
	ExpiresIn string
}

// OrderEmailData dữ liệu cho template email thông báo đơn hàng
type OrderEmailData struct {
	OrderId       uint
	TotalPrice    int
	TotalQuantity int
	Status        string
	DetailLink    string
}

func sendMail(to, subject, tmplPath string, data any) {
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("Lỗi load template email: %v", err)
		return
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		log.Printf("Lỗi render template email: %v", err)
		return
	}

	host := config.Config("SMTP_HOST")
	port, _ := strconv.Atoi(config.Config("SMTP_PORT"))
	username := config.Config("SMTP_USERNAME")
	password := config.Config("SMTP_PASSWORD")
	from := config.Config("SMTP_FROM")

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(host, port, username, password)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Lỗi gửi email tới %s: %v", to, err)
	}
}

// SendVerificationEmail gửi mã xác thực đăng ký / quên mật khẩu (async)
func SendVerificationEmail(to string, data VerificationEmailData) {
	go sendMail(to, "Mã xác thực của bạn", "templates/verification_code.html", data)
}

// SendOrderStatusEmail thông báo người mua khi đơn đổi trạng thái (async)
func SendOrderStatusEmail(to string, data OrderEmailData) {
	go sendMail(to, "Cập nhật đơn hàng #"+strconv.Itoa(int(data.OrderId)), "templates/order_status.html", data)
}
