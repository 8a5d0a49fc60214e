package tui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avickers/phonescout/internal/api"
	"github.com/avickers/phonescout/internal/domain"
)

func testPhone() domain.CellPhone {
	return domain.CellPhone{ID: 1, Brand: "Acme", Model: "X1", Year: 2023, Price: 399}
}

func TestContactFormSubmit(t *testing.T) {
	var out bytes.Buffer
	form := NewContactForm(strings.NewReader("Jo\njo@x.com\n555\n"), &out)

	rec, ok, err := form.Run(testPhone())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.ContactRecord{Name: "Jo", Email: "jo@x.com", Phone: "555"}, rec)
	assert.Contains(t, out.String(), "Acme X1")
}

func TestContactFormNoValidation(t *testing.T) {
	// Required-ness is the collaborator's concern; the form passes
	// empty fields through as-is.
	var out bytes.Buffer
	form := NewContactForm(strings.NewReader("\n\n\n"), &out)

	rec, ok, err := form.Run(testPhone())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.ContactRecord{}, rec)
}

func TestContactFormCancel(t *testing.T) {
	var out bytes.Buffer
	form := NewContactForm(strings.NewReader("Jo\n/cancel\n"), &out)

	rec, ok, err := form.Run(testPhone())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, domain.ContactRecord{}, rec)
}

func TestContactFormEOF(t *testing.T) {
	var out bytes.Buffer
	form := NewContactForm(strings.NewReader("Jo\n"), &out)

	_, _, err := form.Run(testPhone())
	assert.ErrorIs(t, err, io.EOF)
}

func TestRegistrationFormDefaults(t *testing.T) {
	var out bytes.Buffer
	form := NewRegistrationForm(strings.NewReader("\n\n\n"), &out)

	got, err := form.Run(api.UserCreate{Name: "Jo", Language: "es", Preferences: "cheap"})
	require.NoError(t, err)
	assert.Equal(t, api.UserCreate{Name: "Jo", Language: "es", Preferences: "cheap"}, got)
}

func TestRegistrationFormOverrides(t *testing.T) {
	var out bytes.Buffer
	form := NewRegistrationForm(strings.NewReader("Sam\nfr\nbig battery\n"), &out)

	got, err := form.Run(api.UserCreate{})
	require.NoError(t, err)
	assert.Equal(t, api.UserCreate{Name: "Sam", Language: "fr", Preferences: "big battery"}, got)
	assert.Contains(t, out.String(), "en, es, fr, de, it, pt")
}

func TestRegistrationFormDefaultLanguage(t *testing.T) {
	var out bytes.Buffer
	form := NewRegistrationForm(strings.NewReader("\n\n\n"), &out)

	got, err := form.Run(api.UserCreate{})
	require.NoError(t, err)
	assert.Equal(t, "en", got.Language)
}
