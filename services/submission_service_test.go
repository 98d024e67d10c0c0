package services

import (
	"testing"

	"github.com/samenwerkt-wbd/members-backend/mailer"
	"github.com/samenwerkt-wbd/members-backend/models"
	"github.com/samenwerkt-wbd/members-backend/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyStore records appended rows and fails on demand.
type spyStore struct {
	memberships []*models.Membership
	cafeRows    []*models.CafeRegistration
	err         error
}

func (s *spyStore) CreateMembership(record *models.Membership) error {
	if s.err != nil {
		return s.err
	}
	record.ID = uint(len(s.memberships) + 1)
	s.memberships = append(s.memberships, record)
	return nil
}

func (s *spyStore) CreateCafeRegistration(record *models.CafeRegistration) error {
	if s.err != nil {
		return s.err
	}
	record.ID = uint(len(s.cafeRows) + 1)
	s.cafeRows = append(s.cafeRows, record)
	return nil
}

// spyNotifier counts sends and returns configurable results.
type spyNotifier struct {
	operatorOK  bool
	submitterOK bool
	notifyCalls int
	confirmCall int
}

func (n *spyNotifier) result(ok bool) mailer.SendResult {
	if ok {
		return mailer.SendResult{OK: true}
	}
	return mailer.SendResult{OK: false, Detail: "smtp unavailable"}
}

func (n *spyNotifier) NotifyMembershipOperator(*models.Membership) mailer.SendResult {
	n.notifyCalls++
	return n.result(n.operatorOK)
}

func (n *spyNotifier) ConfirmMembershipSubmitter(*models.Membership) mailer.SendResult {
	n.confirmCall++
	return n.result(n.submitterOK)
}

func (n *spyNotifier) NotifyCafeOperator(*models.CafeRegistration) mailer.SendResult {
	n.notifyCalls++
	return n.result(n.operatorOK)
}

func (n *spyNotifier) ConfirmCafeSubmitter(*models.CafeRegistration) mailer.SendResult {
	n.confirmCall++
	return n.result(n.submitterOK)
}

func validMembership() *models.MembershipSubmission {
	return &models.MembershipSubmission{
		Naam:          "Jan Jansen",
		Adres:         "Kerkstraat 1, Wijk bij Duurstede",
		Geboortedatum: "01-01-1990",
		Telefoon:      "0612345678",
		Email:         "jan@example.com",
		Lidmaatschap:  "regulier",
		Activiteiten:  map[string]any{"flyeren": true},
	}
}

func validCafe() *models.CafeSubmission {
	return &models.CafeSubmission{
		Naam:             "Piet Pietersen",
		Email:            "piet@example.com",
		LidVanSamenwerkt: models.AnswerNo,
		KomtNaarCafe:     models.AnswerYes,
		Telefoonnummer:   "0687654321",
	}
}

func TestSubmitMembership(t *testing.T) {
	t.Run("Stores the record and reports full success", func(t *testing.T) {
		store := &spyStore{}
		notifier := &spyNotifier{operatorOK: true, submitterOK: true}
		service := NewSubmissionService(store, notifier)

		result, err := service.SubmitMembership(validMembership())
		require.NoError(t, err)

		assert.True(t, result.Success)
		assert.Equal(t, models.MsgSubmitOK, result.Message)
		assert.Empty(t, result.Warning)

		require.Len(t, store.memberships, 1)
		stored := store.memberships[0]
		assert.Equal(t, "Jan Jansen", stored.Naam)
		assert.JSONEq(t, `{"flyeren":true}`, string(stored.Activiteiten))
		assert.Contains(t, string(stored.SubmissionData), `"naam":"Jan Jansen"`)

		assert.Equal(t, 1, notifier.notifyCalls)
		assert.Equal(t, 1, notifier.confirmCall)
	})

	t.Run("Trims input before storing", func(t *testing.T) {
		store := &spyStore{}
		service := NewSubmissionService(store, &spyNotifier{operatorOK: true, submitterOK: true})

		req := validMembership()
		req.Naam = "  Jan Jansen  "
		_, err := service.SubmitMembership(req)
		require.NoError(t, err)

		assert.Equal(t, "Jan Jansen", store.memberships[0].Naam)
	})

	t.Run("Validation failure stores nothing and sends nothing", func(t *testing.T) {
		store := &spyStore{}
		notifier := &spyNotifier{operatorOK: true, submitterOK: true}
		service := NewSubmissionService(store, notifier)

		result, err := service.SubmitMembership(&models.MembershipSubmission{Naam: "J"})
		assert.Nil(t, result)

		var validationErr *models.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.NotEmpty(t, validationErr.Violations)

		assert.Empty(t, store.memberships)
		assert.Zero(t, notifier.notifyCalls)
		assert.Zero(t, notifier.confirmCall)
	})

	t.Run("Storage failure sends no email", func(t *testing.T) {
		store := &spyStore{err: &storage.StorageError{Operation: "create membership"}}
		notifier := &spyNotifier{operatorOK: true, submitterOK: true}
		service := NewSubmissionService(store, notifier)

		result, err := service.SubmitMembership(validMembership())
		assert.Nil(t, result)

		var storageErr *storage.StorageError
		require.ErrorAs(t, err, &storageErr)

		assert.Zero(t, notifier.notifyCalls)
		assert.Zero(t, notifier.confirmCall)
	})

	t.Run("Email failures downgrade to warnings", func(t *testing.T) {
		cases := []struct {
			name        string
			operatorOK  bool
			submitterOK bool
			message     string
			warning     string
		}{
			{"confirmation failed", true, false, models.MsgSubmitNoConfirmation, models.WarnConfirmationFailed},
			{"notification failed", false, true, models.MsgSubmitNoNotification, models.WarnNotificationFailed},
			{"all email failed", false, false, models.MsgSubmitNoEmail, models.WarnAllEmailFailed},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				store := &spyStore{}
				notifier := &spyNotifier{operatorOK: tc.operatorOK, submitterOK: tc.submitterOK}
				service := NewSubmissionService(store, notifier)

				result, err := service.SubmitMembership(validMembership())
				require.NoError(t, err)

				assert.True(t, result.Success)
				assert.Equal(t, tc.message, result.Message)
				assert.Equal(t, tc.warning, result.Warning)
				assert.Len(t, store.memberships, 1)
			})
		}
	})

	t.Run("Confirmation still attempted after failed notification", func(t *testing.T) {
		notifier := &spyNotifier{operatorOK: false, submitterOK: true}
		service := NewSubmissionService(&spyStore{}, notifier)

		_, err := service.SubmitMembership(validMembership())
		require.NoError(t, err)

		assert.Equal(t, 1, notifier.notifyCalls)
		assert.Equal(t, 1, notifier.confirmCall)
	})
}

func TestSubmitCafeRegistration(t *testing.T) {
	t.Run("Stores the record and reports full success", func(t *testing.T) {
		store := &spyStore{}
		notifier := &spyNotifier{operatorOK: true, submitterOK: true}
		service := NewSubmissionService(store, notifier)

		result, err := service.SubmitCafeRegistration(validCafe())
		require.NoError(t, err)

		assert.True(t, result.Success)
		assert.Equal(t, models.MsgSubmitOK, result.Message)

		require.Len(t, store.cafeRows, 1)
		stored := store.cafeRows[0]
		assert.Equal(t, models.AnswerYes, stored.KomtNaarCafe)
		assert.Contains(t, string(stored.SubmissionData), `"naam":"Piet Pietersen"`)
	})

	t.Run("Validation failure enumerates all violations", func(t *testing.T) {
		service := NewSubmissionService(&spyStore{}, &spyNotifier{})

		_, err := service.SubmitCafeRegistration(&models.CafeSubmission{})

		var validationErr *models.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Len(t, validationErr.Violations, 5)
	})

	t.Run("Storage failure sends no email", func(t *testing.T) {
		store := &spyStore{err: &storage.StorageError{Operation: "create cafe registration"}}
		notifier := &spyNotifier{operatorOK: true, submitterOK: true}
		service := NewSubmissionService(store, notifier)

		_, err := service.SubmitCafeRegistration(validCafe())
		require.Error(t, err)
		assert.Zero(t, notifier.notifyCalls)
	})
}
