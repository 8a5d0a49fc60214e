package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/avickers/phonescout/internal/api"
	"github.com/avickers/phonescout/internal/domain"
)

// CancelCommand abandons the contact form from any prompt.
const CancelCommand = "/cancel"

// languages offered by the registration form.
var languages = []string{"en", "es", "fr", "de", "it", "pt"}

// ContactForm collects the three contact fields interactively. The
// form itself enforces nothing; required-ness is the contact service's
// concern. No network call originates here.
type ContactForm struct {
	in  *bufio.Reader
	out io.Writer
}

// NewContactForm creates a contact form reading from in and prompting
// on out.
func NewContactForm(in io.Reader, out io.Writer) *ContactForm {
	return &ContactForm{in: newReader(in), out: out}
}

// Run prompts for name, email, and phone. ok is false when the user
// typed /cancel at any prompt; err is set only on read failure.
func (f *ContactForm) Run(item domain.CellPhone) (rec domain.ContactRecord, ok bool, err error) {
	fmt.Fprintf(f.out, "Contact information for the %s %s\n", item.Brand, item.Model)
	fmt.Fprintf(f.out, "Please provide your details so we can contact you about your selected phone. Type %s to go back.\n", CancelCommand)

	fields := []struct {
		prompt string
		dest   *string
	}{
		{"Name: ", &rec.Name},
		{"Email: ", &rec.Email},
		{"Phone: ", &rec.Phone},
	}
	for _, field := range fields {
		fmt.Fprint(f.out, field.prompt)
		line, err := readLine(f.in)
		if err != nil {
			return domain.ContactRecord{}, false, err
		}
		if line == CancelCommand {
			return domain.ContactRecord{}, false, nil
		}
		*field.dest = line
	}
	return rec, true, nil
}

// RegistrationForm collects the optional profile fields for user
// registration. The parent calls the registration collaborator with
// the result; the form itself makes no network call.
type RegistrationForm struct {
	in  *bufio.Reader
	out io.Writer
}

// NewRegistrationForm creates a registration form reading from in and
// prompting on out.
func NewRegistrationForm(in io.Reader, out io.Writer) *RegistrationForm {
	return &RegistrationForm{in: newReader(in), out: out}
}

// Run prompts for name, language, and preferences. Empty answers keep
// the given defaults.
func (f *RegistrationForm) Run(defaults api.UserCreate) (api.UserCreate, error) {
	if defaults.Language == "" {
		defaults.Language = "en"
	}

	fmt.Fprintln(f.out, "Welcome to PhoneScout")
	fmt.Fprintln(f.out, "Let's get to know you better to provide personalized recommendations.")

	fmt.Fprintf(f.out, "Your name (optional) [%s]: ", defaults.Name)
	name, err := readLine(f.in)
	if err != nil {
		return api.UserCreate{}, err
	}
	if name != "" {
		defaults.Name = name
	}

	fmt.Fprintf(f.out, "Preferred language (%s) [%s]: ", strings.Join(languages, ", "), defaults.Language)
	lang, err := readLine(f.in)
	if err != nil {
		return api.UserCreate{}, err
	}
	if lang != "" {
		defaults.Language = lang
	}

	fmt.Fprintf(f.out, "Phone preferences, e.g. \"I prefer Apple phones, budget around $500, need good camera\" (optional) [%s]: ", defaults.Preferences)
	prefs, err := readLine(f.in)
	if err != nil {
		return api.UserCreate{}, err
	}
	if prefs != "" {
		defaults.Preferences = prefs
	}

	return defaults, nil
}

// newReader reuses an existing bufio.Reader so forms sharing stdin
// with a read loop don't drop buffered input.
func newReader(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// readLine reads one trimmed line. A final unterminated line before
// EOF still counts as input.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
