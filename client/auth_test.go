package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI answers the auth and create endpoints the way the server does.
func fakeAPI(t *testing.T) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/auth/login/foodpatner", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "pw" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"Invalid email or password"}`))
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "tok-1", Path: "/", HttpOnly: true})
		w.Write([]byte(`{"message":"Food partner logged in successfully","user":{"id":"p1","name":"Dosa Hub","email":"dosa@example.com"}}`))
	})

	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Asha Rao", body["fullname"])
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "tok-u", Path: "/", HttpOnly: true})
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"User created successfully","user":{"id":"u1","fullname":"Asha Rao","email":"asha@example.com"}}`))
	})

	mux.HandleFunc("/api/auth/profile/foodpatner", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Unauthorized"}`))
			return
		}
		w.Write([]byte(`{"user":{"id":"p1","name":"Dosa Hub","email":"dosa@example.com","contact":"98450","address":"Church Street","createdAt":"2026-01-02T03:04:05Z"}}`))
	})

	mux.HandleFunc("/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "", Path: "/", MaxAge: -1})
		w.Write([]byte(`{"message":"User logged out successfully"}`))
	})

	mux.HandleFunc("/api/food", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Masala Dosa", r.FormValue("name"))
		assert.Equal(t, "crispy", r.FormValue("description"))

		f, fh, err := r.FormFile("video")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "dosa.mp4", fh.Filename)
		assert.Equal(t, "video/mp4", fh.Header.Get("Content-Type"))
		assert.Equal(t, "mp4-bytes", string(data))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"food created successfully","food":{"id":"f1","name":"Masala Dosa","video":"https://cdn.test/videos/masala-dosa.mp4","foodPartner":"p1"}}`))
	})

	return mux
}

func TestLoginFoodPartner_CapturesSessionToken(t *testing.T) {
	c := serve(t, fakeAPI(t).ServeHTTP)
	ctx := context.Background()

	_, err := c.LoginFoodPartner(ctx, "dosa@example.com", "wrong")
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.Status)
	assert.Empty(t, c.Token())

	acct, err := c.LoginFoodPartner(ctx, "dosa@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Dosa Hub", acct.DisplayName())
	assert.Equal(t, "tok-1", c.Token())

	profile, err := c.FoodPartnerProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Church Street", profile.Address)
	assert.Equal(t, 2026, profile.CreatedAt.Year())

	require.NoError(t, c.Logout(ctx))
	assert.Empty(t, c.Token())
	_, err = c.FoodPartnerProfile(ctx)
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusUnauthorized, se.Status)
}

func TestRegisterUser_CapturesSessionToken(t *testing.T) {
	c := serve(t, fakeAPI(t).ServeHTTP)

	acct, err := c.RegisterUser(context.Background(), "Asha Rao", "asha@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", acct.DisplayName())
	assert.Equal(t, "tok-u", c.Token())
}

func TestCreateFood_Multipart(t *testing.T) {
	c := serve(t, fakeAPI(t).ServeHTTP).WithToken("tok-1")

	item, err := c.CreateFood(context.Background(), NewFood{
		Name:        "Masala Dosa",
		Description: "crispy",
		Filename:    "/tmp/clips/dosa.mp4",
		Video:       strings.NewReader("mp4-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "f1", item.ID)
	assert.Equal(t, "p1", item.FoodPartner)

	_, err = c.CreateFood(context.Background(), NewFood{Name: "x"})
	assert.Error(t, err)
}
