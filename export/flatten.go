// Package export turns stored submissions into a flat spreadsheet, mails
// it to the administrator and removes the transient file after a
// successful send.
package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/samenwerkt-wbd/members-backend/models"
)

// activityColumnPrefix marks the flattened activity columns.
const activityColumnPrefix = "activiteit_"

// membershipColumns is the fixed leading column order of the membership
// export; flattened activity columns follow.
var membershipColumns = []string{
	"id", "naam", "email", "telefoon", "adres", "geboortedatum",
	"lidmaatschap", "opleiding", "beroep", "politieke_ervaring", "aanmeld_datum",
}

var cafeColumns = []string{
	"id", "naam", "email", "telefoonnummer", "lid_van_samenwerkt",
	"komt_naar_cafe", "opmerkingen", "aanmeld_datum",
}

// Table is the flat tabular form of one export: a header row and zero or
// more data rows in the same column order.
type Table struct {
	Headers []string
	Rows    [][]string
}

// FlattenMemberships reshapes membership rows into a table. The activity
// mapping becomes one column per distinct key observed across ALL rows
// (sorted, prefixed); rows without a key get an empty cell.
func FlattenMemberships(records []models.Membership) (*Table, error) {
	activities := make([]map[string]any, len(records))
	keySet := make(map[string]struct{})

	for i, record := range records {
		if len(record.Activiteiten) == 0 {
			continue
		}
		var parsed map[string]any
		if err := json.Unmarshal(record.Activiteiten, &parsed); err != nil {
			// Unparseable activity blobs lose their columns but never
			// abort the export of the remaining data.
			continue
		}
		activities[i] = parsed
		for key := range parsed {
			keySet[key] = struct{}{}
		}
	}

	activityKeys := make([]string, 0, len(keySet))
	for key := range keySet {
		activityKeys = append(activityKeys, key)
	}
	sort.Strings(activityKeys)

	headers := append(append([]string{}, membershipColumns...), prefixed(activityKeys)...)

	rows := make([][]string, 0, len(records))
	for i, record := range records {
		row := []string{
			strconv.FormatUint(uint64(record.ID), 10),
			record.Naam,
			record.Email,
			record.Telefoon,
			record.Adres,
			record.Geboortedatum,
			record.Lidmaatschap,
			record.Opleiding,
			record.Beroep,
			record.PolitiekeErvaring,
			record.Timestamp.Format("02-01-2006 15:04"),
		}
		for _, key := range activityKeys {
			row = append(row, cellValue(activities[i], key))
		}
		rows = append(rows, row)
	}

	return &Table{Headers: headers, Rows: rows}, nil
}

// FlattenCafeRegistrations reshapes café RSVP rows into a table.
func FlattenCafeRegistrations(records []models.CafeRegistration) (*Table, error) {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(record.ID), 10),
			record.Naam,
			record.Email,
			record.Telefoonnummer,
			record.LidVanSamenwerkt,
			record.KomtNaarCafe,
			record.Opmerkingen,
			record.Timestamp.Format("02-01-2006 15:04"),
		})
	}

	return &Table{Headers: append([]string{}, cafeColumns...), Rows: rows}, nil
}

func prefixed(keys []string) []string {
	out := make([]string, len(keys))
	for i, key := range keys {
		out[i] = activityColumnPrefix + key
	}
	return out
}

// cellValue renders one activity value; absent keys become empty cells.
func cellValue(activities map[string]any, key string) string {
	if activities == nil {
		return ""
	}
	value, ok := activities[key]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
