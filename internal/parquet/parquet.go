// Package parquet provides data structures and functions for exporting
// processed traffic data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/gitpulse/gitpulse/schema"
	"github.com/parquet-go/parquet-go"
)

// DailyTraffic represents one reconciled day of traffic for one repository.
// One row is exported per repository per canonical day.
type DailyTraffic struct {
	// Repo is the full owner/name repository identifier
	Repo string `parquet:"repo,snappy"`

	// Date is the calendar day in YYYY-MM-DD form
	Date string `parquet:"date,snappy"`

	// Time is the local-noon Unix timestamp for the day
	Time float64 `parquet:"time,snappy"`

	// Clones is the clone count recorded on that day
	Clones int32 `parquet:"clones,snappy"`

	// Cloners is the unique cloner count recorded on that day
	Cloners int32 `parquet:"cloners,snappy"`

	// Views is the view count recorded on that day
	Views int32 `parquet:"views,snappy"`

	// Viewers is the unique viewer count recorded on that day
	Viewers int32 `parquet:"viewers,snappy"`
}

// PointCounters represents one snapshot's point-in-time counters for one
// repository.
type PointCounters struct {
	// Repo is the full owner/name repository identifier
	Repo string `parquet:"repo,snappy"`

	// Time is the Unix timestamp of the poll
	Time float64 `parquet:"time,snappy"`

	// Stars is the stargazer count at poll time
	Stars int32 `parquet:"stars,snappy"`

	// Forks is the fork count at poll time
	Forks int32 `parquet:"forks,snappy"`

	// Watchers is the subscriber count at poll time
	Watchers int32 `parquet:"watchers,snappy"`
}

// ConvertDailyRecords flattens processed records into daily traffic rows.
func ConvertDailyRecords(records []schema.ProcessedRepo) []DailyTraffic {
	var rows []DailyTraffic
	for i := range records {
		daily := &records[i].Daily
		for j := range daily.Dates {
			rows = append(rows, DailyTraffic{
				Repo:    records[i].Repo,
				Date:    daily.Dates[j],
				Time:    daily.Times[j],
				Clones:  int32(daily.Clones[j]),
				Cloners: int32(daily.Cloners[j]),
				Views:   int32(daily.Views[j]),
				Viewers: int32(daily.Viewers[j]),
			})
		}
	}
	return rows
}

// ConvertPointRecords flattens processed records into point counter rows.
func ConvertPointRecords(records []schema.ProcessedRepo) []PointCounters {
	var rows []PointCounters
	for i := range records {
		point := &records[i].Point
		for j := range point.Times {
			rows = append(rows, PointCounters{
				Repo:     records[i].Repo,
				Time:     point.Times[j],
				Stars:    int32(point.Stars[j]),
				Forks:    int32(point.Forks[j]),
				Watchers: int32(point.Watchers[j]),
			})
		}
	}
	return rows
}

// WriteDailyTrafficParquet writes daily traffic rows to a Parquet file.
func WriteDailyTrafficParquet(data []DailyTraffic, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the DailyTraffic struct tags
	writer := parquet.NewGenericWriter[DailyTraffic](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WritePointCountersParquet writes point counter rows to a Parquet file.
func WritePointCountersParquet(data []PointCounters, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the PointCounters struct tags
	writer := parquet.NewGenericWriter[PointCounters](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
