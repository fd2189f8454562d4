package mixer

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Export combines the selections and uploads the result as a CSV shopping
// list, returning the public URL. The CSV carries the same warnings the
// combine response does, as trailing comment-style rows, so a printed list
// never hides an excluded line.
func (s *Service) Export(ctx context.Context, ownerID string, inputs []SelectionInput) (string, *CombineResult, error) {
	if s.uploader == nil {
		return "", nil, errors.New("export storage not configured")
	}

	result, err := s.Combine(ctx, ownerID, inputs)
	if err != nil {
		return "", nil, err
	}

	body, err := renderCSV(result)
	if err != nil {
		return "", nil, err
	}

	key := fmt.Sprintf(
		"shopping-lists/%s/%s-%s.csv",
		ownerID,
		time.Now().UTC().Format("2006-01-02"),
		uuid.New().String(),
	)

	url, err := s.uploader.UploadBytes(ctx, key, "text/csv", body)
	if err != nil {
		return "", nil, err
	}

	return url, result, nil
}

func renderCSV(result *CombineResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"ingredient", "quantity", "unit", "cost", "notes"}); err != nil {
		return nil, err
	}

	for _, line := range result.Lines {
		record := []string{
			line.IngredientName,
			line.Quantity.String(),
			string(line.Unit),
			line.Cost.String(),
			strings.Join(line.Notes, "; "),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	if err := w.Write([]string{"total", "", "", result.TotalCost.String(), result.Currency}); err != nil {
		return nil, err
	}

	for _, warn := range result.Warnings {
		if err := w.Write([]string{"warning", "", "", "", warn.Reason}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
