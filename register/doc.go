// Package register extracts development application records from
// council register PDFs: it drives the reconstruction pipeline per page,
// discovers column headings, and validates and formats the per-row
// records.
package register
