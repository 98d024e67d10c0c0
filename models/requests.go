package models

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Answer values for the two café enum fields.
const (
	AnswerYes = "ja"
	AnswerNo  = "nee"
)

// Validation messages shown to submitters. Kept in Dutch, matching the
// public website.
const (
	MsgNaamRequired         = "Naam is verplicht en moet minimaal 2 karakters bevatten."
	MsgAdresRequired        = "Adres is verplicht en moet minimaal 5 karakters bevatten."
	MsgTelefoonRequired     = "Telefoonnummer is verplicht en moet minimaal 8 cijfers bevatten."
	MsgLidmaatschapRequired = "Lidmaatschapstype is verplicht."
	MsgEmailInvalid         = "E-mailadres is ongeldig."
	MsgLidVanSamenwerkt     = "Geef aan of u lid bent van SamenWerkt."
	MsgKomtNaarCafe         = "Geef aan of u naar het politiek café komt."
)

// MembershipSubmission is the payload of POST /api/submit.
type MembershipSubmission struct {
	Naam              string         `json:"naam"`
	Adres             string         `json:"adres"`
	Geboortedatum     string         `json:"geboortedatum"`
	Telefoon          string         `json:"telefoon"`
	Email             string         `json:"email"`
	Lidmaatschap      string         `json:"lidmaatschap"`
	Opleiding         string         `json:"opleiding,omitempty"`
	Beroep            string         `json:"beroep,omitempty"`
	PolitiekeErvaring string         `json:"politieke_ervaring,omitempty"`
	Activiteiten      map[string]any `json:"activiteiten,omitempty"`
}

// Normalize trims whitespace from all free-text fields.
func (s *MembershipSubmission) Normalize() {
	s.Naam = strings.TrimSpace(s.Naam)
	s.Adres = strings.TrimSpace(s.Adres)
	s.Geboortedatum = strings.TrimSpace(s.Geboortedatum)
	s.Telefoon = strings.TrimSpace(s.Telefoon)
	s.Email = strings.TrimSpace(s.Email)
	s.Opleiding = strings.TrimSpace(s.Opleiding)
	s.Beroep = strings.TrimSpace(s.Beroep)
	s.PolitiekeErvaring = strings.TrimSpace(s.PolitiekeErvaring)
}

// Validate checks every constraint independently and returns one message
// per violation. It never stops at the first failure so a submitter sees
// everything that is wrong with the form at once. Length constraints
// count characters, not bytes, so names with diacritics measure the way
// a submitter would expect.
func (s *MembershipSubmission) Validate() []string {
	var violations []string

	if utf8.RuneCountInString(strings.TrimSpace(s.Naam)) < 2 {
		violations = append(violations, MsgNaamRequired)
	}
	if utf8.RuneCountInString(strings.TrimSpace(s.Adres)) < 5 {
		violations = append(violations, MsgAdresRequired)
	}
	if utf8.RuneCountInString(strings.TrimSpace(s.Telefoon)) < 8 {
		violations = append(violations, MsgTelefoonRequired)
	}
	if s.Lidmaatschap == "" {
		violations = append(violations, MsgLidmaatschapRequired)
	}
	if !isValidEmail(s.Email) {
		violations = append(violations, MsgEmailInvalid)
	}

	return violations
}

// CafeSubmission is the payload of POST /api/cafe.
type CafeSubmission struct {
	Naam             string `json:"naam"`
	Email            string `json:"email"`
	LidVanSamenwerkt string `json:"lidVanSamenwerkt"`
	KomtNaarCafe     string `json:"komtNaarCafe"`
	Telefoonnummer   string `json:"telefoonnummer"`
	Opmerkingen      string `json:"opmerkingen,omitempty"`
}

// Normalize trims whitespace from all free-text fields.
func (s *CafeSubmission) Normalize() {
	s.Naam = strings.TrimSpace(s.Naam)
	s.Email = strings.TrimSpace(s.Email)
	s.Telefoonnummer = strings.TrimSpace(s.Telefoonnummer)
	s.Opmerkingen = strings.TrimSpace(s.Opmerkingen)
}

// Validate checks every constraint independently, one message per violation.
func (s *CafeSubmission) Validate() []string {
	var violations []string

	if utf8.RuneCountInString(strings.TrimSpace(s.Naam)) < 2 {
		violations = append(violations, MsgNaamRequired)
	}
	if utf8.RuneCountInString(strings.TrimSpace(s.Telefoonnummer)) < 8 {
		violations = append(violations, MsgTelefoonRequired)
	}
	if !isValidEmail(s.Email) {
		violations = append(violations, MsgEmailInvalid)
	}
	if s.LidVanSamenwerkt != AnswerYes && s.LidVanSamenwerkt != AnswerNo {
		violations = append(violations, MsgLidVanSamenwerkt)
	}
	if s.KomtNaarCafe != AnswerYes && s.KomtNaarCafe != AnswerNo {
		violations = append(violations, MsgKomtNaarCafe)
	}

	return violations
}

// isValidEmail checks the local-part@domain grammar. net/mail implements
// the RFC 5322 address syntax; the extra checks reject the forms it
// accepts that a web form should not (display names, missing domain dot).
func isValidEmail(address string) bool {
	if address == "" {
		return false
	}
	parsed, err := mail.ParseAddress(address)
	if err != nil || parsed.Address != address {
		return false
	}
	at := strings.LastIndex(address, "@")
	if at <= 0 || at == len(address)-1 {
		return false
	}
	return strings.Contains(address[at+1:], ".")
}
