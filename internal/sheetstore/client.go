package sheetstore

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/api/sheets/v4"
)

// Client adalah implementasi Values di atas Google Sheets API v4.
// Satu Client melayani satu spreadsheet; thread-safe.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	logger        *zap.Logger

	mu   sync.Mutex
	gids map[string]int64 // cache judul sheet -> sheetId numerik
}

func NewClient(svc *sheets.Service, spreadsheetID string, logger ...*zap.Logger) *Client {
	l := zap.L().Named("sheetstore.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sheetstore.client")
	}
	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		logger:        l,
		gids:          make(map[string]int64),
	}
}

func (c *Client) Get(ctx context.Context, rng string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets get %s: %w", rng, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, raw := range resp.Values {
		row := make([]string, len(raw))
		for j, cell := range raw {
			if cell != nil {
				row[j] = fmt.Sprint(cell)
			}
		}
		rows[i] = row
	}
	return rows, nil
}

func (c *Client) Append(ctx context.Context, rng string, row []any) (int, error) {
	body := &sheets.ValueRange{Values: [][]interface{}{row}}
	resp, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rng, body).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("sheets append %s: %w", rng, err)
	}
	if resp.Updates == nil || resp.Updates.UpdatedRange == "" {
		return 0, fmt.Errorf("sheets append %s: response missing updated range", rng)
	}

	// Nomor baris hasil append dipakai sebagai correlation ID
	// untuk follow-up write (backfill ID foto/folder).
	rowNo, err := RowFromRange(resp.Updates.UpdatedRange)
	if err != nil {
		return 0, err
	}

	c.logger.Debug("row appended",
		zap.String("range", resp.Updates.UpdatedRange),
		zap.Int("row", rowNo),
	)
	return rowNo, nil
}

func (c *Client) Update(ctx context.Context, rng string, rows [][]any) error {
	body := &sheets.ValueRange{Values: rows}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, body).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets update %s: %w", rng, err)
	}
	return nil
}

func (c *Client) DeleteRow(ctx context.Context, sheet string, row int) error {
	gid, err := c.sheetID(ctx, sheet)
	if err != nil {
		return err
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    gid,
					Dimension:  "ROWS",
					StartIndex: int64(row - 1), // index 0-based, end eksklusif
					EndIndex:   int64(row),
				},
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("sheets delete row %d of %s: %w", row, sheet, err)
	}
	return nil
}

// sheetID resolve judul tab ke sheetId numerik (dibutuhkan batchUpdate).
// Hasilnya di-cache seumur proses; tab tidak pernah di-rename saat runtime.
func (c *Client) sheetID(ctx context.Context, title string) (int64, error) {
	c.mu.Lock()
	if gid, ok := c.gids[title]; ok {
		c.mu.Unlock()
		return gid, nil
	}
	c.mu.Unlock()

	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties").
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("sheets metadata: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, sh := range meta.Sheets {
		if sh.Properties != nil {
			c.gids[sh.Properties.Title] = sh.Properties.SheetId
		}
	}
	gid, ok := c.gids[title]
	if !ok {
		return 0, fmt.Errorf("sheetstore: sheet %q not found in spreadsheet", title)
	}
	return gid, nil
}
