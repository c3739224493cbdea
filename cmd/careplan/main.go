// careplan builds a month's schedule for the sample roster and writes the
// HTML schedule and pay report to disk.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/arnavshah/care-scheduler-go/internal/seed"
	"github.com/arnavshah/care-scheduler-go/pkg/payroll"
	"github.com/arnavshah/care-scheduler-go/pkg/render"
	"github.com/arnavshah/care-scheduler-go/pkg/scheduler"
)

func main() {
	_ = godotenv.Load("../.env")

	month := flag.Int("month", 12, "schedule month (1-12)")
	year := flag.Int("year", 2024, "schedule year")
	outDir := flag.String("out", ".", "output directory for HTML files")
	flag.Parse()

	roster, err := seed.SampleRoster(*month, *year)
	if err != nil {
		log.Fatalf("seed roster: %v", err)
	}

	s := scheduler.New(roster)
	sched, err := s.BuildMonth(*month, *year)
	if err != nil {
		log.Fatalf("build schedule: %v", err)
	}

	records := payroll.Calculate(s.Roster())
	weekly, monthly := payroll.Totals(records)

	html := render.NewHTML()

	schedulePage, err := html.RenderSchedule(sched)
	if err != nil {
		log.Fatalf("render schedule: %v", err)
	}
	payrollPage, err := html.RenderPayroll(records, weekly, monthly)
	if err != nil {
		log.Fatalf("render pay report: %v", err)
	}

	schedulePath := filepath.Join(*outDir, fmt.Sprintf("care_schedule_%04d_%02d.html", *year, *month))
	payrollPath := filepath.Join(*outDir, fmt.Sprintf("pay_report_%04d_%02d.html", *year, *month))

	if err := render.WriteFile(schedulePath, schedulePage); err != nil {
		log.Fatalf("write %s: %v", schedulePath, err)
	}
	if err := render.WriteFile(payrollPath, payrollPage); err != nil {
		log.Fatalf("write %s: %v", payrollPath, err)
	}

	fmt.Printf("Schedule written to %s\n", schedulePath)
	fmt.Printf("Pay report written to %s\n", payrollPath)
	fmt.Printf("Fairness score: %.1f%%, coverage gaps: %d\n", s.FairnessScore(), len(s.Gaps()))
	fmt.Printf("Total weekly pay: $%s, total monthly pay: $%s\n", weekly.StringFixed(2), monthly.StringFixed(2))
}
