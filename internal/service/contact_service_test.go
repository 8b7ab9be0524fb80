package service

import (
	"context"
	"errors"
	"testing"

	"github.com/JemAndrew/JemAndrewWebsite/internal/config"
	"github.com/JemAndrew/JemAndrewWebsite/internal/models"
	"github.com/JemAndrew/JemAndrewWebsite/internal/repository"
	"github.com/rs/zerolog"
)

// fakeMailer records sends and can simulate delivery failures
type fakeMailer struct {
	sent    int
	lastSub string
	fail    bool
}

func (m *fakeMailer) Send(name, email, subject, message string) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.sent++
	m.lastSub = subject
	return nil
}

// failingContactStore rejects every write
type failingContactStore struct {
	repository.MemoryContactStore
}

func (s *failingContactStore) Create(ctx context.Context, msg *models.ContactMessage) error {
	return errors.New("store unavailable")
}

func newTestContact(store repository.ContactStore, mailer Mailer) *contactService {
	cfg := &config.ContactConfig{MaxMessageLength: 2000}
	return newContactService(store, mailer, cfg, zerolog.Nop())
}

func contactRequest() *models.ContactRequest {
	return &models.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "This is a message long enough to pass validation.",
	}
}

func TestContactSubmit_Success(t *testing.T) {
	store := &repository.MemoryContactStore{}
	mailer := &fakeMailer{}
	svc := newTestContact(store, mailer)

	resp, err := svc.Submit(context.Background(), contactRequest())
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if !resp.Success {
		t.Fatalf("Expected success, got %+v", resp)
	}
	if resp.Message == "" {
		t.Error("Expected a confirmation message")
	}

	msgs, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("Expected 1 stored message, got %d", len(msgs))
	}
	if msgs[0].ID == "" {
		t.Error("Stored message has no ID")
	}
	if msgs[0].IsRead || msgs[0].Replied {
		t.Error("New message should start unread and unreplied")
	}
	if mailer.sent != 1 {
		t.Errorf("Expected 1 mail sent, got %d", mailer.sent)
	}
}

func TestContactSubmit_Spam(t *testing.T) {
	store := &repository.MemoryContactStore{}
	mailer := &fakeMailer{}
	svc := newTestContact(store, mailer)

	req := contactRequest()
	req.Honeypot = "filled by a bot"

	resp, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Spam rejection must not be an internal error: %v", err)
	}
	if resp.Success {
		t.Fatal("Expected rejection for tripped honeypot")
	}
	if resp.Message != "Spam detected." {
		t.Errorf("Unexpected message: %q", resp.Message)
	}

	msgs, _ := store.List(context.Background())
	if len(msgs) != 0 {
		t.Errorf("Spam must not be stored, got %d messages", len(msgs))
	}
	if mailer.sent != 0 {
		t.Errorf("Spam must not be mailed, got %d sends", mailer.sent)
	}
}

func TestContactSubmit_ValidationFailure(t *testing.T) {
	store := &repository.MemoryContactStore{}
	mailer := &fakeMailer{}
	svc := newTestContact(store, mailer)

	req := contactRequest()
	req.Email = "not-an-email"
	req.Message = "short"

	resp, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Validation rejection must not be an internal error: %v", err)
	}
	if resp.Success {
		t.Fatal("Expected validation failure")
	}
	if len(resp.Errors["email"]) == 0 || len(resp.Errors["message"]) == 0 {
		t.Errorf("Expected email and message errors, got %v", resp.Errors)
	}

	msgs, _ := store.List(context.Background())
	if len(msgs) != 0 {
		t.Errorf("Invalid submission must not be stored, got %d messages", len(msgs))
	}
}

func TestContactSubmit_StoreFailure(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newTestContact(&failingContactStore{}, mailer)

	resp, err := svc.Submit(context.Background(), contactRequest())
	if err == nil {
		t.Fatal("Expected an error when the store rejects the write")
	}
	if resp.Success {
		t.Fatal("Expected failure when the store rejects the write")
	}
	if len(resp.Errors) != 0 {
		t.Errorf("Store failure must not expose field errors, got %v", resp.Errors)
	}
	if mailer.sent != 0 {
		t.Errorf("Unstored message must not be mailed, got %d sends", mailer.sent)
	}
}

func TestContactSubmit_MailFailureStillSucceeds(t *testing.T) {
	store := &repository.MemoryContactStore{}
	svc := newTestContact(store, &fakeMailer{fail: true})

	resp, err := svc.Submit(context.Background(), contactRequest())
	if err != nil {
		t.Fatalf("Delivery failure must not surface as an error: %v", err)
	}
	if !resp.Success {
		t.Fatalf("Delivery failure must not fail the submission, got %+v", resp)
	}

	msgs, _ := store.List(context.Background())
	if len(msgs) != 1 {
		t.Errorf("Expected message stored despite mail failure, got %d", len(msgs))
	}
}

func TestContactMarkRead(t *testing.T) {
	store := &repository.MemoryContactStore{}
	svc := newTestContact(store, &fakeMailer{})

	resp, err := svc.Submit(context.Background(), contactRequest())
	if err != nil || !resp.Success {
		t.Fatalf("Submit failed: %+v (%v)", resp, err)
	}
	msgs, _ := store.List(context.Background())
	id := msgs[0].ID

	ok, err := svc.MarkRead(context.Background(), id)
	if err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	if !ok {
		t.Fatal("Expected MarkRead to find the message")
	}

	ok, err = svc.MarkRead(context.Background(), "missing-id")
	if err != nil {
		t.Fatalf("MarkRead failed: %v", err)
	}
	if ok {
		t.Error("Expected MarkRead to report a missing message")
	}
}
