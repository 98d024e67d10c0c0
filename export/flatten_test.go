package export

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/samenwerkt-wbd/members-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenMemberships(t *testing.T) {
	ts := time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

	t.Run("No rows yields header row only", func(t *testing.T) {
		table, err := FlattenMemberships(nil)
		require.NoError(t, err)
		assert.Equal(t, membershipColumns, table.Headers)
		assert.Empty(t, table.Rows)
	})

	t.Run("Activity columns are the union across all rows", func(t *testing.T) {
		records := []models.Membership{
			{
				ID:           1,
				Naam:         "Jan Jansen",
				Email:        "jan@example.com",
				Timestamp:    ts,
				Activiteiten: json.RawMessage(`{"flyeren":true,"canvassen":false}`),
			},
			{
				ID:           2,
				Naam:         "Piet Pietersen",
				Email:        "piet@example.com",
				Timestamp:    ts,
				Activiteiten: json.RawMessage(`{"bestuur":"misschien"}`),
			},
			{
				ID:        3,
				Naam:      "Klaas Klaassen",
				Email:     "klaas@example.com",
				Timestamp: ts,
			},
		}

		table, err := FlattenMemberships(records)
		require.NoError(t, err)

		expected := append(append([]string{}, membershipColumns...),
			"activiteit_bestuur", "activiteit_canvassen", "activiteit_flyeren")
		assert.Equal(t, expected, table.Headers)
		require.Len(t, table.Rows, 3)

		// Every row has one cell per header, absent keys are empty.
		offset := len(membershipColumns)
		for _, row := range table.Rows {
			assert.Len(t, row, len(expected))
		}
		assert.Equal(t, []string{"", "false", "true"}, table.Rows[0][offset:])
		assert.Equal(t, []string{"misschien", "", ""}, table.Rows[1][offset:])
		assert.Equal(t, []string{"", "", ""}, table.Rows[2][offset:])
	})

	t.Run("Formats the fixed columns", func(t *testing.T) {
		records := []models.Membership{
			{
				ID:            42,
				Naam:          "Jan Jansen",
				Email:         "jan@example.com",
				Telefoon:      "0612345678",
				Adres:         "Kerkstraat 1",
				Geboortedatum: "01-01-1990",
				Lidmaatschap:  "regulier",
				Timestamp:     ts,
			},
		}

		table, err := FlattenMemberships(records)
		require.NoError(t, err)
		require.Len(t, table.Rows, 1)

		row := table.Rows[0]
		assert.Equal(t, "42", row[0])
		assert.Equal(t, "Jan Jansen", row[1])
		assert.Equal(t, "15-03-2025 14:30", row[len(membershipColumns)-1])
	})

	t.Run("Unparseable activity blob does not abort the export", func(t *testing.T) {
		records := []models.Membership{
			{ID: 1, Naam: "Kapot", Timestamp: ts, Activiteiten: json.RawMessage(`niet json`)},
			{ID: 2, Naam: "Heel", Timestamp: ts, Activiteiten: json.RawMessage(`{"flyeren":true}`)},
		}

		table, err := FlattenMemberships(records)
		require.NoError(t, err)
		require.Len(t, table.Rows, 2)

		offset := len(membershipColumns)
		assert.Equal(t, "", table.Rows[0][offset])
		assert.Equal(t, "true", table.Rows[1][offset])
	})

	t.Run("Numeric activity values render without exponent", func(t *testing.T) {
		records := []models.Membership{
			{ID: 1, Naam: "Jan", Timestamp: ts, Activiteiten: json.RawMessage(`{"uren": 2.5}`)},
		}

		table, err := FlattenMemberships(records)
		require.NoError(t, err)
		assert.Equal(t, "2.5", table.Rows[0][len(membershipColumns)])
	})
}

func TestFlattenCafeRegistrations(t *testing.T) {
	ts := time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

	t.Run("No rows yields header row only", func(t *testing.T) {
		table, err := FlattenCafeRegistrations(nil)
		require.NoError(t, err)
		assert.Equal(t, cafeColumns, table.Headers)
		assert.Empty(t, table.Rows)
	})

	t.Run("Row order and content follow the input", func(t *testing.T) {
		records := []models.CafeRegistration{
			{
				ID:               1,
				Naam:             "Piet Pietersen",
				Email:            "piet@example.com",
				Telefoonnummer:   "0687654321",
				LidVanSamenwerkt: "nee",
				KomtNaarCafe:     "ja",
				Opmerkingen:      "Ik neem een introducee mee.",
				Timestamp:        ts,
			},
		}

		table, err := FlattenCafeRegistrations(records)
		require.NoError(t, err)
		require.Len(t, table.Rows, 1)

		assert.Equal(t, []string{
			"1", "Piet Pietersen", "piet@example.com", "0687654321",
			"nee", "ja", "Ik neem een introducee mee.", "15-03-2025 14:30",
		}, table.Rows[0])
	})
}
