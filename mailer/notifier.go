package mailer

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/samenwerkt-wbd/members-backend/models"
	"github.com/wneessen/go-mail"
)

// Subjects of the four notification messages.
const (
	subjectMembershipNotify  = "Nieuwe aanmelding via de website: "
	subjectMembershipConfirm = "Bevestiging lidmaatschapsaanvraag SamenWerkt Wijk bij Duurstede"
	subjectCafeNotify        = "Nieuwe aanmelding politiek café: "
	subjectCafeConfirm       = "Bevestiging aanmelding politiek café SamenWerkt"
)

// Notifier sends the operator notification and submitter confirmation
// for a stored submission. Each send builds and dials its own message,
// so one failing delivery never affects the other.
type Notifier struct {
	sender   Sender
	from     string
	operator string
	now      func() time.Time
}

// NewNotifier creates a notifier that sends from the given address and
// notifies the operator address.
func NewNotifier(sender Sender, from, operator string) *Notifier {
	return &Notifier{
		sender:   sender,
		from:     from,
		operator: operator,
		now:      time.Now,
	}
}

type membershipMailData struct {
	Naam              string
	Email             string
	Telefoon          string
	Lidmaatschap      string
	Datum             string
	VolledigeGegevens string
}

type cafeMailData struct {
	Naam              string
	Email             string
	Telefoonnummer    string
	LidVanSamenwerkt  string
	KomtNaarCafe      string
	Opmerkingen       string
	CafeStatus        string
	MemberStatus      string
	Datum             string
	VolledigeGegevens string
}

// NotifyMembershipOperator sends the internal notification for a new
// membership registration.
func (n *Notifier) NotifyMembershipOperator(record *models.Membership) SendResult {
	data := n.membershipData(record)
	body, err := renderTemplate(membershipNotifyTmpl, data)
	if err != nil {
		return n.failure("membership operator notification", err)
	}
	return n.send("membership operator notification", n.operator, subjectMembershipNotify+record.Naam, body)
}

// ConfirmMembershipSubmitter sends the confirmation to the submitter.
func (n *Notifier) ConfirmMembershipSubmitter(record *models.Membership) SendResult {
	data := n.membershipData(record)
	body, err := renderTemplate(membershipConfirmTmpl, data)
	if err != nil {
		return n.failure("membership confirmation", err)
	}
	return n.send("membership confirmation", record.Email, subjectMembershipConfirm, body)
}

// NotifyCafeOperator sends the internal notification for a café RSVP.
func (n *Notifier) NotifyCafeOperator(record *models.CafeRegistration) SendResult {
	data := n.cafeData(record)
	body, err := renderTemplate(cafeNotifyTmpl, data)
	if err != nil {
		return n.failure("cafe operator notification", err)
	}
	return n.send("cafe operator notification", n.operator, subjectCafeNotify+record.Naam, body)
}

// ConfirmCafeSubmitter sends the RSVP confirmation to the submitter.
func (n *Notifier) ConfirmCafeSubmitter(record *models.CafeRegistration) SendResult {
	data := n.cafeData(record)
	body, err := renderTemplate(cafeConfirmTmpl, data)
	if err != nil {
		return n.failure("cafe confirmation", err)
	}
	return n.send("cafe confirmation", record.Email, subjectCafeConfirm, body)
}

func (n *Notifier) membershipData(record *models.Membership) membershipMailData {
	return membershipMailData{
		Naam:              record.Naam,
		Email:             record.Email,
		Telefoon:          record.Telefoon,
		Lidmaatschap:      record.Lidmaatschap,
		Datum:             n.now().Format("02-01-2006"),
		VolledigeGegevens: prettyJSON(record.SubmissionData),
	}
}

func (n *Notifier) cafeData(record *models.CafeRegistration) cafeMailData {
	cafeStatus := "komt mogelijk niet naar het politiek café"
	if record.KomtNaarCafe == models.AnswerYes {
		cafeStatus = "komt graag naar het politiek café"
	}
	memberStatus := "bent nog geen lid van SamenWerkt"
	if record.LidVanSamenwerkt == models.AnswerYes {
		memberStatus = "bent lid van SamenWerkt"
	}

	return cafeMailData{
		Naam:              record.Naam,
		Email:             record.Email,
		Telefoonnummer:    record.Telefoonnummer,
		LidVanSamenwerkt:  record.LidVanSamenwerkt,
		KomtNaarCafe:      record.KomtNaarCafe,
		Opmerkingen:       record.Opmerkingen,
		CafeStatus:        cafeStatus,
		MemberStatus:      memberStatus,
		Datum:             n.now().Format("02-01-2006"),
		VolledigeGegevens: prettyJSON(record.SubmissionData),
	}
}

// send delivers one HTML message. All failures, including message
// construction, are logged and reported as a SendResult.
func (n *Notifier) send(kind, to, subject, body string) SendResult {
	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return n.failure(kind, err)
	}
	if err := msg.To(to); err != nil {
		return n.failure(kind, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	if err := n.sender.DialAndSend(msg); err != nil {
		return n.failure(kind, err)
	}

	slog.Info("Email sent", "kind", kind, "to", to)
	return SendResult{OK: true}
}

func (n *Notifier) failure(kind string, err error) SendResult {
	slog.Error("Email send failed", "kind", kind, "error", err)
	return SendResult{OK: false, Detail: err.Error()}
}

// prettyJSON re-indents a raw JSON document for the "volledige gegevens"
// block. Invalid input is passed through unchanged.
func prettyJSON(raw json.RawMessage) string {
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return string(raw)
	}
	pretty, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return string(raw)
	}
	return string(pretty)
}
