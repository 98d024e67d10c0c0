// Package services orchestrates one inbound submission: validate, persist,
// then send the two best-effort notification emails. Persistence is the
// only success-critical side effect; email failures are downgraded to a
// warning on the result.
package services

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/samenwerkt-wbd/members-backend/mailer"
	"github.com/samenwerkt-wbd/members-backend/models"
	"github.com/samenwerkt-wbd/members-backend/monitoring"
)

// Store is the append-side of the row store.
type Store interface {
	CreateMembership(*models.Membership) error
	CreateCafeRegistration(*models.CafeRegistration) error
}

// Notifier sends the operator notification and submitter confirmation.
// Implementations never return an error; a failed send is a SendResult.
type Notifier interface {
	NotifyMembershipOperator(*models.Membership) mailer.SendResult
	ConfirmMembershipSubmitter(*models.Membership) mailer.SendResult
	NotifyCafeOperator(*models.CafeRegistration) mailer.SendResult
	ConfirmCafeSubmitter(*models.CafeRegistration) mailer.SendResult
}

// SubmissionService handles both submission kinds.
type SubmissionService struct {
	store    Store
	notifier Notifier
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(store Store, notifier Notifier) *SubmissionService {
	return &SubmissionService{store: store, notifier: notifier}
}

// SubmitMembership processes one membership registration. It returns a
// *models.ValidationError when the input violates any constraint (all
// violations enumerated, nothing stored, no email attempted) and a
// *storage.StorageError when the row insert fails (no email attempted).
func (s *SubmissionService) SubmitMembership(req *models.MembershipSubmission) (*models.SubmissionResult, error) {
	req.Normalize()
	if violations := req.Validate(); len(violations) > 0 {
		monitoring.RecordSubmission("membership", "validation_failed")
		return nil, &models.ValidationError{Violations: violations}
	}

	raw, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize submission: %w", err)
	}
	activities, err := json.Marshal(req.Activiteiten)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize activities: %w", err)
	}

	record := &models.Membership{
		Naam:              req.Naam,
		Adres:             req.Adres,
		Geboortedatum:     req.Geboortedatum,
		Telefoon:          req.Telefoon,
		Email:             req.Email,
		Lidmaatschap:      req.Lidmaatschap,
		Opleiding:         req.Opleiding,
		Beroep:            req.Beroep,
		PolitiekeErvaring: req.PolitiekeErvaring,
		Activiteiten:      activities,
		SubmissionData:    raw,
	}

	if err := s.store.CreateMembership(record); err != nil {
		monitoring.RecordSubmission("membership", "storage_failed")
		return nil, err
	}

	slog.Info("Stored membership submission", "id", record.ID, "naam", record.Naam)

	notified := s.notifier.NotifyMembershipOperator(record)
	confirmed := s.notifier.ConfirmMembershipSubmitter(record)
	monitoring.RecordEmailResults("membership", notified.OK, confirmed.OK)

	monitoring.RecordSubmission("membership", "stored")
	return models.NewSubmissionResult(notified.OK, confirmed.OK), nil
}

// SubmitCafeRegistration processes one political-café RSVP with the same
// terminal states as SubmitMembership.
func (s *SubmissionService) SubmitCafeRegistration(req *models.CafeSubmission) (*models.SubmissionResult, error) {
	req.Normalize()
	if violations := req.Validate(); len(violations) > 0 {
		monitoring.RecordSubmission("cafe", "validation_failed")
		return nil, &models.ValidationError{Violations: violations}
	}

	raw, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize submission: %w", err)
	}

	record := &models.CafeRegistration{
		Naam:             req.Naam,
		Email:            req.Email,
		LidVanSamenwerkt: req.LidVanSamenwerkt,
		KomtNaarCafe:     req.KomtNaarCafe,
		Telefoonnummer:   req.Telefoonnummer,
		Opmerkingen:      req.Opmerkingen,
		SubmissionData:   raw,
	}

	if err := s.store.CreateCafeRegistration(record); err != nil {
		monitoring.RecordSubmission("cafe", "storage_failed")
		return nil, err
	}

	slog.Info("Stored cafe registration", "id", record.ID, "naam", record.Naam)

	notified := s.notifier.NotifyCafeOperator(record)
	confirmed := s.notifier.ConfirmCafeSubmitter(record)
	monitoring.RecordEmailResults("cafe", notified.OK, confirmed.OK)

	monitoring.RecordSubmission("cafe", "stored")
	return models.NewSubmissionResult(notified.OK, confirmed.OK), nil
}
