package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nikhilkumar92976/FOOD-INSTA/models"
	"github.com/nikhilkumar92976/FOOD-INSTA/testutil"
	"github.com/nikhilkumar92976/FOOD-INSTA/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T, mailer Mailer) *AuthService {
	t.Helper()
	return NewAuthService(testutil.OpenTestDB(t), utils.NewTokenIssuer("test-secret"), mailer)
}

func TestRegisterUser_OnlyOncePerEmail(t *testing.T) {
	s := newAuthService(t, nil)
	ctx := context.Background()

	user, token, err := s.RegisterUser(ctx, RegisterUserInput{FullName: "Asha Rao", Email: "asha@example.com", Password: "pw-123456"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "pw-123456", user.Password)

	_, _, err = s.RegisterUser(ctx, RegisterUserInput{FullName: "Other", Email: "asha@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrAccountExists)

	// same mailbox, different spelling
	_, _, err = s.RegisterUser(ctx, RegisterUserInput{FullName: "Other", Email: "  ASHA@example.com ", Password: "x"})
	assert.ErrorIs(t, err, ErrAccountExists)
}

func TestRegister_EmailSharedAcrossKinds(t *testing.T) {
	s := newAuthService(t, nil)
	ctx := context.Background()

	_, _, err := s.RegisterUser(ctx, RegisterUserInput{FullName: "Asha", Email: "shared@example.com", Password: "pw"})
	require.NoError(t, err)

	_, _, err = s.RegisterFoodPartner(ctx, RegisterFoodPartnerInput{
		Name: "Asha's Kitchen", Email: "shared@example.com", Password: "pw", Contact: "999", Address: "MG Road",
	})
	assert.NoError(t, err)
}

func TestLoginUser(t *testing.T) {
	s := newAuthService(t, nil)
	ctx := context.Background()

	registered, _, err := s.RegisterUser(ctx, RegisterUserInput{FullName: "Asha", Email: "asha@example.com", Password: "right"})
	require.NoError(t, err)

	_, _, err = s.LoginUser(ctx, "asha@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = s.LoginUser(ctx, "nobody@example.com", "right")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	user, token, err := s.LoginUser(ctx, "asha@example.com", "right")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	claims, err := s.Tokens().ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, models.KindUser, claims.Kind)
}

func TestFoodPartnerRegisterLoginAndLookup(t *testing.T) {
	s := newAuthService(t, nil)
	ctx := context.Background()

	in := RegisterFoodPartnerInput{Name: "Dosa Hub", Email: "dosa@example.com", Password: "pw", Contact: "12345", Address: "Indiranagar"}
	partner, _, err := s.RegisterFoodPartner(ctx, in)
	require.NoError(t, err)

	_, _, err = s.RegisterFoodPartner(ctx, in)
	assert.ErrorIs(t, err, ErrAccountExists)

	_, _, err = s.LoginFoodPartner(ctx, "dosa@example.com", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	got, token, err := s.LoginFoodPartner(ctx, "dosa@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, partner.ID, got.ID)
	claims, err := s.Tokens().ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, models.KindFoodPartner, claims.Kind)

	found, err := s.GetFoodPartner(ctx, partner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Indiranagar", found.Address)

	_, err = s.GetFoodPartner(ctx, "missing")
	assert.ErrorIs(t, err, ErrAccountNotFound)
	_, err = s.GetUser(ctx, partner.ID)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestRegister_SendsWelcomeMail(t *testing.T) {
	mailer := &testutil.FakeMailer{}
	s := newAuthService(t, mailer)

	_, _, err := s.RegisterUser(context.Background(), RegisterUserInput{FullName: "Asha", Email: "asha@example.com", Password: "pw"})
	require.NoError(t, err)
	s.DrainMail()
	assert.Equal(t, []testutil.Mail{{To: "asha@example.com", Name: "Asha"}}, mailer.Mails())
}

func TestRegister_MailFailureDoesNotFailRegistration(t *testing.T) {
	s := newAuthService(t, &testutil.FakeMailer{Err: errors.New("ses down")})

	_, _, err := s.RegisterFoodPartner(context.Background(), RegisterFoodPartnerInput{
		Name: "Dosa Hub", Email: "dosa@example.com", Password: "pw", Contact: "1", Address: "a",
	})
	assert.NoError(t, err)
	s.DrainMail()
}

func TestRegister_DoesNotWaitForMail(t *testing.T) {
	mailer := &testutil.FakeMailer{Block: make(chan struct{})}
	s := newAuthService(t, mailer)

	done := make(chan error, 1)
	go func() {
		_, _, err := s.RegisterUser(context.Background(), RegisterUserInput{FullName: "Asha", Email: "asha@example.com", Password: "pw"})
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("register blocked on the mail host")
	}
	assert.Empty(t, mailer.Mails())

	close(mailer.Block)
	s.DrainMail()
	assert.Len(t, mailer.Mails(), 1)
}

func TestRegister_PasswordTooLongForBcrypt(t *testing.T) {
	s := newAuthService(t, nil)
	ctx := context.Background()
	long := strings.Repeat("é", 40) // 80 bytes

	_, _, err := s.RegisterUser(ctx, RegisterUserInput{FullName: "Asha", Email: "asha@example.com", Password: long})
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	_, _, err = s.RegisterFoodPartner(ctx, RegisterFoodPartnerInput{
		Name: "Dosa Hub", Email: "dosa@example.com", Password: long, Contact: "1", Address: "a",
	})
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	_, err = findOne[models.User](ctx, s.db, "email = ?", "asha@example.com")
	assert.ErrorIs(t, err, ErrAccountNotFound, "nothing is stored")
}
