// Package testutil holds helpers shared by package tests: in-memory
// databases and fakes for the external media host and mailer.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/nikhilkumar92976/FOOD-INSTA/config"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenTestDB opens a private in-memory SQLite database with all tables migrated.
// It is closed via t.Cleanup.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), config.GormConfig("silent"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("test db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type Upload struct {
	Key         string
	ContentType string
	Body        []byte
}

// FakeMedia records uploads and serves them from BaseURL.
type FakeMedia struct {
	mu      sync.Mutex
	BaseURL string
	Err     error
	Uploads []Upload
}

func (m *FakeMedia) Upload(_ context.Context, body []byte, key, contentType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	m.Uploads = append(m.Uploads, Upload{Key: key, ContentType: contentType, Body: body})
	base := m.BaseURL
	if base == "" {
		base = "https://cdn.test"
	}
	return base + "/" + key, nil
}

type Mail struct {
	To   string
	Name string
}

// FakeMailer records welcome mails. When Block is set, sends wait for it to close.
type FakeMailer struct {
	mu    sync.Mutex
	Err   error
	Block chan struct{}
	Sent  []Mail
}

func (m *FakeMailer) SendWelcome(ctx context.Context, to, name string) error {
	if m.Block != nil {
		select {
		case <-m.Block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, Mail{To: to, Name: name})
	return nil
}

func (m *FakeMailer) Mails() []Mail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Mail(nil), m.Sent...)
}
