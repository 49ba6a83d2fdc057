package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	got *ses.SendEmailInput
	err error
}

func (f *fakeSES) SendEmail(_ context.Context, in *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.got = in
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSESMailer_Send(t *testing.T) {
	client := &fakeSES{}
	m := &sesMailer{client: client, fromAddress: "noreply@eventify.dev", fromName: "Eventify", logger: discardLogger()}

	err := m.Send(context.Background(), "alice@example.com", "Hi", "<p>hi</p>", "")
	require.NoError(t, err)

	require.NotNil(t, client.got)
	assert.Equal(t, "Eventify <noreply@eventify.dev>", aws.ToString(client.got.Source))
	assert.Equal(t, []string{"alice@example.com"}, client.got.Destination.ToAddresses)
	assert.Equal(t, "Hi", aws.ToString(client.got.Message.Subject.Data))
	require.NotNil(t, client.got.Message.Body.Html)
	assert.Equal(t, "<p>hi</p>", aws.ToString(client.got.Message.Body.Html.Data))
	assert.Nil(t, client.got.Message.Body.Text)
}

func TestSESMailer_Send_error(t *testing.T) {
	m := &sesMailer{client: &fakeSES{err: errors.New("throttled")}, fromAddress: "noreply@eventify.dev", logger: discardLogger()}

	err := m.Send(context.Background(), "alice@example.com", "Hi", "", "hi")
	assert.ErrorContains(t, err, "throttled")
}

func TestNewMailer(t *testing.T) {
	sesKeys := SESConfig{Region: "us-east-1", AccessKeyID: "AKIDEXAMPLE", SecretAccessKey: "secret"}
	tests := []struct {
		name     string
		config   MailerConfig
		wantNoop bool
		wantErr  bool
	}{
		{name: "noop", config: MailerConfig{Provider: ProviderNoop}, wantNoop: true},
		{name: "empty provider", config: MailerConfig{}, wantNoop: true},
		{name: "unknown provider", config: MailerConfig{Provider: "smtp"}, wantNoop: true},
		{name: "ses", config: MailerConfig{Provider: ProviderSES, FromAddress: "a@b.c", SES: sesKeys}},
		{name: "ses is case-insensitive", config: MailerConfig{Provider: " SES ", FromAddress: "a@b.c", SES: sesKeys}},
		{name: "ses without from", config: MailerConfig{Provider: ProviderSES, SES: sesKeys}, wantErr: true},
		{name: "ses without credentials", config: MailerConfig{Provider: ProviderSES, FromAddress: "a@b.c", SES: SESConfig{Region: "us-east-1"}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMailer(tt.config, discardLogger())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			_, isNoop := m.(*noopMailer)
			assert.Equal(t, tt.wantNoop, isNoop)
		})
	}
}
