package mailer

import (
	"path/filepath"
	"time"

	"github.com/wneessen/go-mail"
)

type exportMailData struct {
	RecordCount  int
	Datum        string
	Bestandsnaam string
}

// NewExportMessage builds the export email with the spreadsheet attached.
func NewExportMessage(from, to, filePath string, recordCount int, date time.Time) (*mail.Msg, error) {
	body, err := renderTemplate(exportTmpl, exportMailData{
		RecordCount:  recordCount,
		Datum:        date.Format("02-01-2006 om 15:04"),
		Bestandsnaam: filepath.Base(filePath),
	})
	if err != nil {
		return nil, err
	}

	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, err
	}
	if err := msg.To(to); err != nil {
		return nil, err
	}
	msg.Subject("SamenWerkt Ledenoverzicht Export - " + date.Format("02-01-2006"))
	msg.SetBodyString(mail.TypeTextHTML, body)
	msg.AttachFile(filePath, mail.WithFileName(filepath.Base(filePath)))

	return msg, nil
}
