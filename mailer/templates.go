package mailer

import (
	"bytes"
	"fmt"
	"text/template"
)

// Email bodies substitute record fields verbatim. text/template performs
// no output encoding, matching the behavior of the forms that have always
// produced these messages; see DESIGN.md before changing this.

const membershipNotifyBody = `
<h2>Nieuwe lidmaatschapsaanmelding</h2>
<p><strong>Naam:</strong> {{.Naam}}</p>
<p><strong>E-mail:</strong> {{.Email}}</p>
<p><strong>Telefoon:</strong> {{.Telefoon}}</p>
<p><strong>Lidmaatschap:</strong> {{.Lidmaatschap}}</p>
<p><strong>Datum aanmelding:</strong> {{.Datum}}</p>
<hr>
<h3>Volledige gegevens:</h3>
<pre>{{.VolledigeGegevens}}</pre>
`

const membershipConfirmBody = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <div style="background: linear-gradient(135deg, #e53935, #4caf50); padding: 20px; text-align: center;">
        <h1 style="color: white; margin: 0;">SamenWerkt Wijk bij Duurstede</h1>
    </div>

    <div style="padding: 30px; background-color: #f9f9f9;">
        <h2 style="color: #333;">Beste {{.Naam}},</h2>

        <p style="font-size: 16px; line-height: 1.6; color: #555;">
            Hartelijk dank voor uw aanmelding als lid van SamenWerkt Wijk bij Duurstede!
        </p>

        <p style="font-size: 16px; line-height: 1.6; color: #555;">
            Wij hebben uw lidmaatschapsaanvraag in goede orde ontvangen en zullen deze zo spoedig mogelijk behandelen.
            U kunt verwachten dat wij binnen enkele werkdagen contact met u opnemen voor de verdere afhandeling.
        </p>

        <div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #4caf50;">
            <h3 style="margin-top: 0; color: #333;">Uw gegevens:</h3>
            <p><strong>Naam:</strong> {{.Naam}}</p>
            <p><strong>E-mailadres:</strong> {{.Email}}</p>
            <p><strong>Lidmaatschapstype:</strong> {{.Lidmaatschap}}</p>
            <p><strong>Datum aanmelding:</strong> {{.Datum}}</p>
        </div>

        <p style="font-size: 16px; line-height: 1.6; color: #555;">
            Mocht u vragen hebben over uw aanmelding, dan kunt u contact met ons opnemen via
            <a href="mailto:info@samenwerktwbd.nl" style="color: #e53935;">info@samenwerktwbd.nl</a>.
        </p>

        <p style="font-size: 16px; line-height: 1.6; color: #555;">
            Met vriendelijke groet,<br>
            Het bestuur van SamenWerkt Wijk bij Duurstede
        </p>

        <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #ddd; text-align: center;">
            <p style="font-size: 14px; color: #888;">
                <a href="https://samenwerktwijkbijduurstede.nl" style="color: #e53935;">samenwerktwijkbijduurstede.nl</a><br>
                Lokale politiek die ertoe doet
            </p>
        </div>
    </div>
</div>
`

const cafeNotifyBody = `
<h2>Nieuwe aanmelding politiek café</h2>
<p><strong>Naam:</strong> {{.Naam}}</p>
<p><strong>E-mail:</strong> {{.Email}}</p>
<p><strong>Telefoon:</strong> {{.Telefoonnummer}}</p>
<p><strong>Lid van SamenWerkt:</strong> {{.LidVanSamenwerkt}}</p>
<p><strong>Komt naar café:</strong> {{.KomtNaarCafe}}</p>
<p><strong>Datum aanmelding:</strong> {{.Datum}}</p>
{{if .Opmerkingen}}<p><strong>Opmerkingen:</strong> {{.Opmerkingen}}</p>{{end}}
<hr>
<h3>Volledige gegevens:</h3>
<pre>{{.VolledigeGegevens}}</pre>
`

const cafeConfirmBody = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <div style="background: linear-gradient(135deg, #e53935, #4caf50); padding: 20px; text-align: center;">
        <h1 style="color: white; margin: 0;">SamenWerkt Wijk bij Duurstede</h1>
        <h2 style="color: white; margin: 10px 0 0 0; font-size: 18px;">Politiek Café</h2>
    </div>

    <div style="padding: 30px; background-color: #f9f9f9;">
        <h2 style="color: #333;">Beste {{.Naam}},</h2>

        <p style="font-size: 16px; line-height: 1.6; color: #555;">
            Hartelijk dank voor uw aanmelding voor het politiek café van SamenWerkt!
        </p>

        <p style="font-size: 16px; line-height: 1.6; color: #555;">
            We hebben uw aanmelding in goede orde ontvangen. U {{.CafeStatus}} en {{.MemberStatus}}.
        </p>

        <div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #8B4513;">
            <h3 style="margin-top: 0; color: #333;">Uw gegevens:</h3>
            <p><strong>Naam:</strong> {{.Naam}}</p>
            <p><strong>E-mailadres:</strong> {{.Email}}</p>
            <p><strong>Telefoonnummer:</strong> {{.Telefoonnummer}}</p>
            <p><strong>Lid van SamenWerkt:</strong> {{.LidVanSamenwerkt}}</p>
            <p><strong>Komt naar café:</strong> {{.KomtNaarCafe}}</p>
            <p><strong>Datum aanmelding:</strong> {{.Datum}}</p>
            {{if .Opmerkingen}}<p><strong>Opmerkingen:</strong> {{.Opmerkingen}}</p>{{end}}
        </div>

        <p style="font-size: 16px; line-height: 1.6; color: #555;">
            We sturen u binnenkort meer informatie over de datum, tijd en locatie van het eerstvolgende politiek café.
        </p>

        <p style="font-size: 16px; line-height: 1.6; color: #555;">
            Heeft u vragen? Neem gerust contact met ons op via
            <a href="mailto:info@samenwerktwbd.nl" style="color: #e53935;">info@samenwerktwbd.nl</a>.
        </p>

        <p style="font-size: 16px; line-height: 1.6; color: #555;">
            Tot ziens bij het politiek café!<br>
            Het team van SamenWerkt Wijk bij Duurstede
        </p>

        <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #ddd; text-align: center;">
            <p style="font-size: 14px; color: #888;">
                <a href="https://samenwerktwijkbijduurstede.nl" style="color: #e53935;">samenwerktwijkbijduurstede.nl</a><br>
                Lokale politiek die ertoe doet
            </p>
        </div>
    </div>
</div>
`

const exportBody = `
<div style="font-family: Arial, sans-serif; max-width: 600px;">
    <h2 style="color: #e53935;">SamenWerkt Wijk bij Duurstede</h2>
    <h3>Ledenoverzicht Export</h3>

    <p>Beste beheerder,</p>

    <p>Hierbij de opgevraagde export van het ledenbestand van SamenWerkt Wijk bij Duurstede.</p>

    <div style="background: #f5f5f5; padding: 15px; border-radius: 5px; margin: 20px 0;">
        <strong>Export details:</strong><br>
        Aantal records: {{.RecordCount}}<br>
        Export datum: {{.Datum}}<br>
        Bestand: {{.Bestandsnaam}}
    </div>

    <p>Met vriendelijke groet,<br>
    SamenWerkt Export Systeem</p>
</div>
`

var (
	membershipNotifyTmpl  = template.Must(template.New("membership_notify").Parse(membershipNotifyBody))
	membershipConfirmTmpl = template.Must(template.New("membership_confirm").Parse(membershipConfirmBody))
	cafeNotifyTmpl        = template.Must(template.New("cafe_notify").Parse(cafeNotifyBody))
	cafeConfirmTmpl       = template.Must(template.New("cafe_confirm").Parse(cafeConfirmBody))
	exportTmpl            = template.Must(template.New("export").Parse(exportBody))
)

// renderTemplate executes a template into a string.
func renderTemplate(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
