// Package reports renders trend reports as Excel workbooks.
package reports

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/tealeg/xlsx/v3"
	"github.com/tidepool-org/glucolog/analytics"
	"github.com/tidepool-org/glucolog/readings"
)

const (
	ReportSheetNameSummary  = "Summary"
	ReportSheetNameReadings = "Readings"
)

type Report struct {
	window   analytics.Window
	summary  analytics.TrendSummary
	readings []*readings.Reading
}

func NewReport(window analytics.Window, summary analytics.TrendSummary, readings []*readings.Reading) Report {
	return Report{
		window:   window,
		summary:  summary,
		readings: readings,
	}
}

// Filename suggests a unique name for the generated workbook.
func (r Report) Filename() string {
	return fmt.Sprintf("glucose-trends-%s-%s.xlsx", r.window, uuid.NewString())
}

func (r Report) Generate() (*xlsx.File, error) {
	report := xlsx.NewFile()

	components := []func(report *xlsx.File) error{
		r.addSummarySheet,
		r.addReadingsSheet,
	}
	for _, fn := range components {
		if err := fn(report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

func (r Report) addSummarySheet(report *xlsx.File) error {
	sh, err := report.AddSheet(ReportSheetNameSummary)
	if err != nil {
		return err
	}

	sh.AddRow().AddCell().SetValue("GLUCOSE TREND SUMMARY")
	currentRow := sh.AddRow()
	currentRow.AddCell().SetValue("Window")
	currentRow.AddCell().SetValue(string(r.summary.Window))
	currentRow = sh.AddRow()
	currentRow.AddCell().SetValue("Readings")
	currentRow.AddCell().SetValue(r.summary.Count)

	if r.summary.Count == 0 {
		sh.AddRow().AddCell().SetValue("No readings in the selected window")
		return nil
	}

	stats := []struct {
		label string
		value *float64
	}{
		{"Average (mg/dL)", r.summary.Mean},
		{"Standard Deviation (mg/dL)", r.summary.StdDev},
		{"Minimum (mg/dL)", r.summary.Min},
		{"Maximum (mg/dL)", r.summary.Max},
	}
	for _, stat := range stats {
		currentRow = sh.AddRow()
		currentRow.AddCell().SetValue(stat.label)
		currentRow.AddCell().SetValue(fmt.Sprintf("%.1f", *stat.value))
	}

	sh.AddRow()
	sh.AddRow().AddCell().SetValue("AVERAGE BY HOUR OF DAY")
	currentRow = sh.AddRow()
	currentRow.AddCell().SetValue("Hour")
	currentRow.AddCell().SetValue("Average (mg/dL)")

	hours := make([]int, 0, len(r.summary.HourlyMeans))
	for hour := range r.summary.HourlyMeans {
		hours = append(hours, hour)
	}
	sort.Ints(hours)
	for _, hour := range hours {
		currentRow = sh.AddRow()
		currentRow.AddCell().SetValue(hour)
		currentRow.AddCell().SetValue(fmt.Sprintf("%.1f", r.summary.HourlyMeans[hour]))
	}

	return nil
}

func (r Report) addReadingsSheet(report *xlsx.File) error {
	sh, err := report.AddSheet(ReportSheetNameReadings)
	if err != nil {
		return err
	}

	currentRow := sh.AddRow()
	currentRow.AddCell().SetValue("Timestamp")
	currentRow.AddCell().SetValue("Value (mg/dL)")
	currentRow.AddCell().SetValue("Notes")

	for _, reading := range r.readings {
		currentRow = sh.AddRow()
		currentRow.AddCell().SetValue(reading.Timestamp.Format(time.RFC3339))
		currentRow.AddCell().SetValue(reading.Value)
		if reading.Notes != nil {
			currentRow.AddCell().SetValue(*reading.Notes)
		}
	}

	return nil
}
