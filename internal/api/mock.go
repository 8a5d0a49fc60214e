package api

import (
	"context"

	"github.com/avickers/phonescout/internal/domain"
)

// MockAssistant is a test double for Assistant.
type MockAssistant struct {
	ChatFunc func(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

func (m *MockAssistant) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, req)
	}
	return &ChatResponse{Response: "mock response"}, nil
}

// MockRegistration is a test double for Registration.
type MockRegistration struct {
	CreateUserFunc func(ctx context.Context, req UserCreate) (*domain.User, error)
}

func (m *MockRegistration) CreateUser(ctx context.Context, req UserCreate) (*domain.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, req)
	}
	return &domain.User{ID: 1, Name: req.Name, Language: req.Language, Preferences: req.Preferences}, nil
}

// MockContactSubmitter is a test double for ContactSubmitter.
type MockContactSubmitter struct {
	SubmitContactFunc func(ctx context.Context, req ContactSubmission) (*ContactAck, error)
}

func (m *MockContactSubmitter) SubmitContact(ctx context.Context, req ContactSubmission) (*ContactAck, error) {
	if m.SubmitContactFunc != nil {
		return m.SubmitContactFunc(ctx, req)
	}
	return &ContactAck{Message: "received", ContactInfo: req}, nil
}

// MockCatalog is a test double for Catalog.
type MockCatalog struct {
	AddCellphoneFunc func(ctx context.Context, req CellPhoneCreate) (*domain.CellPhone, error)
}

func (m *MockCatalog) AddCellphone(ctx context.Context, req CellPhoneCreate) (*domain.CellPhone, error) {
	if m.AddCellphoneFunc != nil {
		return m.AddCellphoneFunc(ctx, req)
	}
	return &domain.CellPhone{ID: 1, Brand: req.Brand, Model: req.Model, Year: req.Year, Price: req.Price}, nil
}
