package templates

import (
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kishalayrajiitgn-design/Pipe-Stock-Search-Tool/internal/core"
)

// User-facing notices.
const (
	MsgNoMatches     = "No pipes found with selected criteria."
	MsgNoneSelected  = "No pipe selected."
	MsgDailyRefresh  = "Daily stock data will be automatically picked from the latest Excel file in this folder. Refresh the app daily to update."
	checkButtonLabel = "Check Availability & Weight"
)

var recordColumns = []string{core.ColCategory, core.ColSizeOD, core.ColThickness, core.ColWeight, core.ColQuantity}

var availabilityColumns = []string{
	core.ColCategory, core.ColSizeOD, core.ColThickness,
	"Quantity Requested", "Available", "Stock Quantity", "Total Weight (kg)",
}

// PageData is everything the search page shows.
type PageData struct {
	Session  *core.Session
	Now      time.Time
	Criteria core.Criteria
	Quantity string // Raw quantity input, echoed back into the form

	Records []core.PipeRecord

	// Checked is set when the availability button was pressed.
	Checked       bool
	Results       []core.AvailabilityResult
	QuantityError *core.UserMessage
}

func (d PageData) categorySelected(v string) bool { return v == d.Criteria.Category }

func (d PageData) sizeSelected(v string) bool { return v == d.Criteria.SizeOD }

// thicknessSelected compares numerically so "3.0" selects the "3" option.
func (d PageData) thicknessSelected(v string) bool {
	want := core.ParseNumeric(d.Criteria.Thickness)
	got, err := decimal.NewFromString(v)
	return want.Valid && err == nil && got.Equal(want.Decimal)
}

func loadMessage(s *core.Session) string {
	return "Loading stock data from: " + s.File.Name + " (Date: " + s.File.DateLabel() + ")"
}

func loadDetail(s *core.Session, now time.Time) string {
	return "Loaded " + FormatLoadedAt(s.LoadedAt, now) + " · " + FormatCount(s.Table.Len()) + " records"
}

func errorText(msg core.UserMessage) string {
	return msg.Message + " (Code: " + msg.Code + ")"
}

func thicknessValues(opts core.Options) []string {
	out := make([]string, len(opts.Thicknesses))
	for i, t := range opts.Thicknesses {
		out[i] = t.String()
	}
	return out
}

func quantityValue(raw string) string {
	if raw == "" {
		return "1"
	}
	return raw
}

// ExportURL returns the workbook download link for the given search.
func ExportURL(c core.Criteria, quantity int) string {
	q := url.Values{}
	q.Set("category", c.Category)
	q.Set("size", c.SizeOD)
	q.Set("thickness", c.Thickness)
	q.Set("quantity", strconv.Itoa(quantity))
	return "/export/availability.xlsx?" + q.Encode()
}
