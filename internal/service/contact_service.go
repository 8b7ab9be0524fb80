package service

import (
	"context"
	"time"

	"github.com/JemAndrew/JemAndrewWebsite/internal/config"
	"github.com/JemAndrew/JemAndrewWebsite/internal/models"
	"github.com/JemAndrew/JemAndrewWebsite/internal/repository"
	"github.com/JemAndrew/JemAndrewWebsite/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// contactService is the concrete implementation of ContactService
type contactService struct {
	store     repository.ContactStore
	mailer    Mailer
	validator *validation.Validator
	log       zerolog.Logger
}

func newContactService(store repository.ContactStore, mailer Mailer, cfg *config.ContactConfig, log zerolog.Logger) *contactService {
	return &contactService{
		store:     store,
		mailer:    mailer,
		validator: validation.NewValidatorWithMessageLimit(cfg.MaxMessageLength),
		log:       log.With().Str("component", "contact").Logger(),
	}
}

// Submit validates a contact submission, records it and forwards it by
// mail. Rejections return an unsuccessful response with nil error; a
// storage failure returns the error so the transport can answer with an
// internal status. A delivery failure is logged but does not change the
// response: the message is already stored, and transport details must
// not leak to the visitor.
func (s *contactService) Submit(ctx context.Context, req *models.ContactRequest) (*models.ContactResponse, error) {
	if s.validator.IsSpam(req) {
		s.log.Warn().Str("email", req.Email).Msg("Honeypot tripped, rejecting submission")
		return &models.ContactResponse{Success: false, Message: "Spam detected."}, nil
	}

	if errs := s.validator.ValidateContact(req); len(errs) > 0 {
		return &models.ContactResponse{Success: false, Errors: errs}, nil
	}

	msg := &models.ContactMessage{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.Create(ctx, msg); err != nil {
		s.log.Error().Err(err).Msg("Failed to store contact message")
		return &models.ContactResponse{Success: false, Message: "Something went wrong. Please try again later."}, err
	}

	s.log.Info().
		Str("id", msg.ID).
		Str("name", msg.Name).
		Str("subject", msg.Subject).
		Msg("Contact message received")

	if err := s.mailer.Send(msg.Name, msg.Email, msg.Subject, msg.Message); err != nil {
		// Masked on purpose: the message is persisted either way
		s.log.Error().Err(err).Str("id", msg.ID).Msg("Failed to forward contact message by mail")
	}

	return &models.ContactResponse{Success: true, Message: "Thanks for reaching out! I'll get back to you soon."}, nil
}

// ListMessages returns all stored messages, newest first
func (s *contactService) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return s.store.List(ctx)
}

// MarkRead flags a message as read; returns false when it does not exist
func (s *contactService) MarkRead(ctx context.Context, id string) (bool, error) {
	return s.store.MarkRead(ctx, id)
}

// MarkReplied flags a message as replied; returns false when it does not exist
func (s *contactService) MarkReplied(ctx context.Context, id string) (bool, error) {
	return s.store.MarkReplied(ctx, id)
}
