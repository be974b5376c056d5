package otp

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/talent-api/internal/domain"
)

type mockCodeStore struct{ mock.Mock }

func (m *mockCodeStore) Put(ctx context.Context, c *domain.OTPCode) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockCodeStore) Consume(ctx context.Context, email, code string, now int64) (bool, error) {
	args := m.Called(ctx, email, code, now)
	return args.Bool(0), args.Error(1)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendEmail(to, subject, body string) error {
	return m.Called(to, subject, body).Error(0)
}

func TestIssue_StoresSixDigitCodeWithExpiry(t *testing.T) {
	cs := &mockCodeStore{}
	ml := &mockMailer{}

	var stored *domain.OTPCode
	cs.On("Put", mock.Anything, mock.AnythingOfType("*domain.OTPCode")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*domain.OTPCode) }).
		Return(nil)
	ml.On("SendEmail", "alice@example.com", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(cs, ml, 5*time.Minute)
	require.NoError(t, svc.Issue(context.Background(), "alice@example.com"))

	require.NotNil(t, stored)
	assert.Equal(t, "alice@example.com", stored.Email)
	assert.Len(t, stored.Code, 6)
	n, err := strconv.Atoi(stored.Code)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 100000)
	assert.LessOrEqual(t, n, 999999)

	wantExpiry := time.Now().Add(5 * time.Minute).Unix()
	assert.InDelta(t, wantExpiry, stored.ExpiresAt, 2)

	ml.AssertExpectations(t)
}

func TestIssue_CodeAppearsInMailBody(t *testing.T) {
	cs := &mockCodeStore{}
	ml := &mockMailer{}

	var stored *domain.OTPCode
	cs.On("Put", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*domain.OTPCode) }).
		Return(nil)
	ml.On("SendEmail", "alice@example.com", mock.Anything, mock.MatchedBy(func(body string) bool {
		return stored != nil && len(stored.Code) == 6 && strings.Contains(body, stored.Code)
	})).Return(nil)

	svc := NewService(cs, ml, 5*time.Minute)
	require.NoError(t, svc.Issue(context.Background(), "alice@example.com"))
	ml.AssertExpectations(t)
}

func TestIssue_MailFailurePropagates_CodeKept(t *testing.T) {
	cs := &mockCodeStore{}
	ml := &mockMailer{}

	cs.On("Put", mock.Anything, mock.Anything).Return(nil)
	ml.On("SendEmail", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	svc := NewService(cs, ml, 5*time.Minute)
	err := svc.Issue(context.Background(), "alice@example.com")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotificationFailed))
	// The store write happened before the failed send; nothing is deleted.
	cs.AssertCalled(t, "Put", mock.Anything, mock.Anything)
	cs.AssertNotCalled(t, "Consume", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestIssue_StoreFailure_NoMailSent(t *testing.T) {
	cs := &mockCodeStore{}
	ml := &mockMailer{}

	cs.On("Put", mock.Anything, mock.Anything).Return(errors.New("dynamo unavailable"))

	svc := NewService(cs, ml, 5*time.Minute)
	err := svc.Issue(context.Background(), "alice@example.com")

	require.Error(t, err)
	ml.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerify_DelegatesToAtomicConsume(t *testing.T) {
	cs := &mockCodeStore{}

	cs.On("Consume", mock.Anything, "alice@example.com", "482913", mock.AnythingOfType("int64")).
		Return(true, nil).Once()
	cs.On("Consume", mock.Anything, "alice@example.com", "482913", mock.AnythingOfType("int64")).
		Return(false, nil).Once()

	svc := NewService(cs, nil, 5*time.Minute)

	ok, err := svc.Verify(context.Background(), "alice@example.com", "482913")
	require.NoError(t, err)
	assert.True(t, ok)

	// Second consumption of the same code fails: single use.
	ok, err = svc.Verify(context.Background(), "alice@example.com", "482913")
	require.NoError(t, err)
	assert.False(t, ok)
}
