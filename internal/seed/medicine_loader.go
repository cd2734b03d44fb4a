package seed

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// LoadMedicines ingests a medicine catalog CSV into the medicines table, ignoring
// rows whose (drug_name, batch_number) already exist. The header row is
//
//	drug_name,batch_number,medicine_type,manufacturer,quantity,expiry_date,price
//
// expiry_date is YYYY-MM-DD and may be empty along with price.
// It returns the number of rows inserted.
func LoadMedicines(db *sqlx.DB, csvPath string) (int, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("open medicine catalog %s: %w", csvPath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	// Skip header
	if _, err := reader.Read(); err != nil {
		return 0, fmt.Errorf("read medicine header: %w", err)
	}

	tx, err := db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("start medicine transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(tx.Rebind(`INSERT INTO medicines (drug_name, batch_number, medicine_type, manufacturer, quantity, expiry_date, price)
                VALUES (?, ?, ?, ?, ?, ?, ?) ON CONFLICT (drug_name, batch_number) DO NOTHING`))
	if err != nil {
		return 0, fmt.Errorf("prepare medicine insert: %w", err)
	}
	defer stmt.Close()

	rows := 0
	line := 1
	for {
		record, err := reader.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.Warn("unable to read medicine row", "line", line, "error", err)
			continue
		}
		if len(record) < 7 {
			slog.Warn("skipping short medicine row", "line", line, "fields", len(record))
			continue
		}
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		drugName, batch := record[0], record[1]
		if drugName == "" || batch == "" {
			continue
		}

		quantity, err := strconv.ParseInt(record[4], 10, 64)
		if err != nil {
			slog.Warn("skipping medicine with bad quantity", "line", line, "value", record[4])
			continue
		}
		var expiry *time.Time
		if record[5] != "" {
			t, err := time.Parse("2006-01-02", record[5])
			if err != nil {
				slog.Warn("skipping medicine with bad expiry_date", "line", line, "value", record[5])
				continue
			}
			expiry = &t
		}
		var price *float64
		if record[6] != "" {
			p, err := strconv.ParseFloat(record[6], 64)
			if err != nil {
				slog.Warn("skipping medicine with bad price", "line", line, "value", record[6])
				continue
			}
			price = &p
		}

		res, err := stmt.Exec(drugName, batch, record[2], record[3], quantity, expiry, price)
		if err != nil {
			slog.Warn("unable to insert medicine", "drug_name", drugName, "batch_number", batch, "error", err)
			continue
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			rows++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit medicine seed: %w", err)
	}
	slog.Info("seeded medicine catalog", "rows", rows, "path", csvPath)
	return rows, nil
}
