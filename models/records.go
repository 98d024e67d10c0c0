package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Membership represents one stored membership registration.
// Rows are written exactly once at submission time and never updated.
type Membership struct {
	ID                uint            `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Naam              string          `gorm:"column:naam;not null" json:"naam"`
	Adres             string          `gorm:"column:adres;not null" json:"adres"`
	Geboortedatum     string          `gorm:"column:geboortedatum;not null" json:"geboortedatum"`
	Telefoon          string          `gorm:"column:telefoon;not null" json:"telefoon"`
	Email             string          `gorm:"column:email;not null" json:"email"`
	Lidmaatschap      string          `gorm:"column:lidmaatschap;not null" json:"lidmaatschap"`
	Opleiding         string          `gorm:"column:opleiding" json:"opleiding,omitempty"`
	Beroep            string          `gorm:"column:beroep" json:"beroep,omitempty"`
	PolitiekeErvaring string          `gorm:"column:politieke_ervaring" json:"politiekeErvaring,omitempty"`
	Activiteiten      json.RawMessage `gorm:"column:activiteiten;type:text" json:"activiteiten,omitempty"`
	Timestamp         time.Time       `gorm:"column:timestamp;not null;index:idx_memberships_timestamp" json:"timestamp"`
	SubmissionData    json.RawMessage `gorm:"column:submission_data;type:text;not null" json:"-"`
}

// TableName sets the table name for GORM
func (Membership) TableName() string {
	return "memberships"
}

// BeforeCreate hook stamps the creation time if the service did not set it
func (m *Membership) BeforeCreate(tx *gorm.DB) error {
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}
	return nil
}

// CafeRegistration represents one stored political-café RSVP.
type CafeRegistration struct {
	ID               uint            `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Naam             string          `gorm:"column:naam;not null" json:"naam"`
	Email            string          `gorm:"column:email;not null" json:"email"`
	LidVanSamenwerkt string          `gorm:"column:lid_van_samenwerkt;not null" json:"lidVanSamenwerkt"`
	KomtNaarCafe     string          `gorm:"column:komt_naar_cafe;not null" json:"komtNaarCafe"`
	Telefoonnummer   string          `gorm:"column:telefoonnummer;not null" json:"telefoonnummer"`
	Opmerkingen      string          `gorm:"column:opmerkingen" json:"opmerkingen,omitempty"`
	Timestamp        time.Time       `gorm:"column:timestamp;not null;index:idx_cafe_registrations_timestamp" json:"timestamp"`
	SubmissionData   json.RawMessage `gorm:"column:submission_data;type:text;not null" json:"-"`
}

// TableName sets the table name for GORM
func (CafeRegistration) TableName() string {
	return "cafe_registrations"
}

// BeforeCreate hook stamps the creation time if the service did not set it
func (c *CafeRegistration) BeforeCreate(tx *gorm.DB) error {
	if c.Timestamp.IsZero() {
		c.Timestamp = time.Now().UTC()
	}
	return nil
}
