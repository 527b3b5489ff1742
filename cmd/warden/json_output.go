package main

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"warden/internal/roster"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type recordView struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Distance     int    `json:"distance"`
	FeePaid      bool   `json:"fee_paid"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func newRecordView(record *roster.Record) recordView {
	return recordView{
		ID:           record.ID,
		Name:         record.Name,
		Distance:     record.Distance,
		FeePaid:      record.FeePaid,
		Status:       string(record.Status),
		ErrorMessage: record.ErrorMessage,
		CreatedAt:    record.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    record.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func newRecordViews(records []*roster.Record) []recordView {
	views := make([]recordView, len(records))
	for i, record := range records {
		views[i] = newRecordView(record)
	}
	return views
}
