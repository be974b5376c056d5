package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/talent-api/internal/domain"
	"github.com/talent-api/internal/infrastructure/smtp"
)

// Service issues and verifies one-time email verification codes.
type Service interface {
	// Issue stores a fresh code for email and mails it. A mail failure is
	// reported to the caller but the stored code is kept.
	Issue(ctx context.Context, email string) error
	// Verify consumes a matching unexpired code. The boolean is a business
	// outcome, not an error: false covers wrong, expired, and never-issued
	// codes alike.
	Verify(ctx context.Context, email, code string) (bool, error)
}

type codeStore interface {
	Put(ctx context.Context, c *domain.OTPCode) error
	Consume(ctx context.Context, email, code string, now int64) (bool, error)
}

type service struct {
	repo   codeStore
	mailer smtp.Mailer
	ttl    time.Duration
}

func NewService(repo codeStore, mailer smtp.Mailer, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &service{repo: repo, mailer: mailer, ttl: ttl}
}

func (s *service) Issue(ctx context.Context, email string) error {
	code, err := generateCode()
	if err != nil {
		return err
	}
	c := &domain.OTPCode{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(s.ttl).Unix(),
	}
	if err := s.repo.Put(ctx, c); err != nil {
		return err
	}
	body := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, int(s.ttl.Minutes()))
	if err := s.mailer.SendEmail(email, "Your verification code", body); err != nil {
		// The code row is already persisted; a resend can still succeed.
		return fmt.Errorf("send code to %s: %w: %w", email, domain.ErrNotificationFailed, err)
	}
	return nil
}

func (s *service) Verify(ctx context.Context, email, code string) (bool, error) {
	return s.repo.Consume(ctx, email, code, time.Now().Unix())
}

// generateCode draws a uniform 6-digit code in [100000, 999999], so the
// first digit is never zero.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
