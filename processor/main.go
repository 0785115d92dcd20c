// Command processor is a standalone scheduler target: it scans unbooked
// transport demand, classifies urgency, and mails an Excel report to the
// operations distribution list when anything has gone urgent.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"time"

	"fiber-erp/config"
	"fiber-erp/database"
	"fiber-erp/repositories"
	"fiber-erp/services"

	"github.com/xuri/excelize/v2"
	"gopkg.in/gomail.v2"
)

func main() {
	config.LoadConfig()

	db, err := database.GetDBConnection(config.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	repo := repositories.NewTransportRepository(db)

	var in services.ReconcileInput

	inward, err := repo.GetInwardViews()
	if err != nil {
		log.Printf("fetch inward transports failed: %v", err)
	}
	outward, err := repo.GetOutwardViews()
	if err != nil {
		log.Printf("fetch outward transports failed: %v", err)
	}
	in.Booked = append(inward, outward...)

	if in.POs, err = repo.GetEligiblePOs(); err != nil {
		log.Printf("fetch eligible purchase orders failed: %v", err)
	}
	if in.Jobs, err = repo.GetEligibleJobs(); err != nil {
		log.Printf("fetch eligible job orders failed: %v", err)
	}
	if in.Imports, err = repo.GetPendingImports(); err != nil {
		log.Printf("fetch pending imports failed: %v", err)
	}

	now := time.Now()
	lanes := services.Reconcile(in)
	summary := services.SummarizeUrgency(lanes, now)

	log.Printf("pending bookings: %d total, %d urgent, %d warning",
		summary.TotalPending, summary.UrgentCount, summary.WarningCount)

	if summary.UrgentCount == 0 {
		log.Println("no urgent bookings, no report sent")
		return
	}

	report, err := buildReport(lanes, summary, now)
	if err != nil {
		log.Fatalf("Failed to build report: %v", err)
	}

	if err := sendReport(report, summary, now); err != nil {
		log.Fatalf("Failed to send report: %v", err)
	}

	log.Printf("urgent booking report sent to %d recipient(s)", len(config.AlertRecipients))
}

// buildReport renders every unbooked row with its urgency bucket into a
// single-sheet workbook, urgent rows first.
func buildReport(lanes map[services.Lane][]services.TransportView, summary services.UrgencySummary, now time.Time) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Pending Bookings"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Urgency", "Days Pending", "Lane", "Source No", "Party", "Product", "Quantity", "Unit", "Delivery Date"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	type reportRow struct {
		urgency services.Urgency
		days    int
		view    services.TransportView
	}

	var rows []reportRow
	for _, bucket := range []services.Urgency{services.UrgencyUrgent, services.UrgencyWarning, services.UrgencyNormal} {
		for _, lane := range services.LaneOrder {
			for _, v := range lanes[lane] {
				if !v.NeedsBooking {
					continue
				}
				date := services.ResolveDate(v.DeliveryDate, v.ExpectedDelivery)
				if services.ClassifyUrgency(date, now) != bucket {
					continue
				}
				days, _ := services.DaysPending(date, now)
				rows = append(rows, reportRow{urgency: bucket, days: days, view: v})
			}
		}
	}

	for i, r := range rows {
		sourceNumber := r.view.PONumber
		if sourceNumber == "" {
			sourceNumber = r.view.JobNumber
		}
		values := []interface{}{
			string(r.urgency), r.days, string(r.view.Lane), sourceNumber,
			r.view.PartyName, r.view.ProductSummary, r.view.Quantity, r.view.Unit,
			services.ResolveDate(r.view.DeliveryDate, r.view.ExpectedDelivery),
		}
		for col, val := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, val)
		}
	}

	return f.WriteToBuffer()
}

func sendReport(report *bytes.Buffer, summary services.UrgencySummary, now time.Time) error {
	if len(config.AlertRecipients) == 0 {
		return fmt.Errorf("no alert recipients configured")
	}

	filename := fmt.Sprintf("pending_bookings_%s.xlsx", now.Format("20060102"))

	m := gomail.NewMessage()
	m.SetHeader("From", config.SMTPUser)
	m.SetHeader("To", config.AlertRecipients...)
	m.SetHeader("Subject", fmt.Sprintf("[ACTION] %d urgent transport bookings pending - %s",
		summary.UrgentCount, now.Format("02 Jan 2006")))
	m.SetBody("text/plain", fmt.Sprintf(
		"Transport booking backlog as of %s:\n\n"+
			"  Urgent  (>3 days late): %d orders, %.1f MT\n"+
			"  Warning (2-3 days late): %d orders, %.1f MT\n"+
			"  Normal: %d orders, %.1f MT\n\n"+
			"Full list attached.\n",
		now.Format("02 Jan 2006 15:04"),
		summary.UrgentCount, summary.UrgentMT,
		summary.WarningCount, summary.WarningMT,
		summary.NormalCount, summary.NormalMT,
	))
	m.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(report.Bytes())
		return err
	}))

	d := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	return d.DialAndSend(m)
}
