package mailservice

import (
	"bytes"
	"context"
	"sync"

	"github.com/go-mail/mail/v2"

	"github.com/sushihentaime/blogway/internal/common"
)

type MailService struct {
	mb     common.MessageConsumer
	m      mailer
	logger logger
	ctx    context.Context
	cancel context.CancelFunc
}

type mailer interface {
	send(recipient string, data any, templateFile string) error
}

type dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type templateParser interface {
	ParseTemplate(name string, data any) (*bytes.Buffer, *bytes.Buffer, *bytes.Buffer, error)
}

// logger is the subset of slog.Logger the service needs; kept small so tests
// can substitute their own.
type logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

type Mail struct {
	mu     sync.Mutex
	dialer dialer
	sender string
	parser templateParser
}
