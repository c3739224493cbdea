package render

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arnavshah/care-scheduler-go/pkg/models"
	"github.com/arnavshah/care-scheduler-go/pkg/scheduler"
)

// HTML renders schedules and pay reports as standalone HTML pages.
// html/template auto-escapes caregiver names, so markup in a display name
// cannot break the page.
type HTML struct {
	schedule *template.Template
	payroll  *template.Template
}

var _ ScheduleRenderer = (*HTML)(nil)
var _ PayrollRenderer = (*HTML)(nil)

// NewHTML creates the renderer. Template parse errors are programmer errors,
// so they panic at startup rather than surfacing per call.
func NewHTML() *HTML {
	return &HTML{
		schedule: template.Must(template.New("schedule").Parse(scheduleTemplate)),
		payroll:  template.Must(template.New("payroll").Parse(payrollTemplate)),
	}
}

type scheduleRow struct {
	Date string
	AM   string
	PM   string
}

type scheduleView struct {
	Title string
	Rows  []scheduleRow
}

// RenderSchedule renders every real day of the schedule's month in calendar
// order. Days missing from the mapping render as NoCoverage for both shifts.
func (h *HTML) RenderSchedule(s *models.MonthSchedule) (string, error) {
	view := scheduleView{
		Title: fmt.Sprintf("%s %d Care Schedule", time.Month(s.Month), s.Year),
	}

	for day := 1; day <= scheduler.DaysIn(s.Month, s.Year); day++ {
		date := scheduler.DateString(s.Year, s.Month, day)
		row := scheduleRow{Date: date, AM: models.NoCoverage, PM: models.NoCoverage}
		if assigned, ok := s.Days[date]; ok {
			row.AM = assigned.AM.Caregiver
			row.PM = assigned.PM.Caregiver
		}
		view.Rows = append(view.Rows, row)
	}

	var out strings.Builder
	if err := h.schedule.Execute(&out, view); err != nil {
		return "", err
	}
	return out.String(), nil
}

type payrollRow struct {
	Name    string
	Hours   float64
	Rate    string
	Weekly  string
	Monthly string
}

type payrollView struct {
	Rows         []payrollRow
	TotalWeekly  string
	TotalMonthly string
}

// RenderPayroll renders the pay report ordered by caregiver name, with
// roster-wide weekly and monthly totals. Amounts show as dollars and cents.
func (h *HTML) RenderPayroll(records map[string]models.PayRecord, weekly, monthly decimal.Decimal) (string, error) {
	view := payrollView{
		TotalWeekly:  weekly.StringFixed(2),
		TotalMonthly: monthly.StringFixed(2),
	}
	for _, r := range sortedRecords(records) {
		view.Rows = append(view.Rows, payrollRow{
			Name:    r.Name,
			Hours:   r.Hours,
			Rate:    r.PayRate.StringFixed(2),
			Weekly:  r.WeeklyGross.StringFixed(2),
			Monthly: r.MonthlyGross.StringFixed(2),
		})
	}

	var out strings.Builder
	if err := h.payroll.Execute(&out, view); err != nil {
		return "", err
	}
	return out.String(), nil
}

const scheduleTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #999; padding: 0.4em 0.8em; text-align: left; }
th { background: #eee; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<table>
<tr><th>Date</th><th>AM (6h)</th><th>PM (6h)</th></tr>
{{range .Rows}}<tr><td>{{.Date}}</td><td>{{.AM}}</td><td>{{.PM}}</td></tr>
{{end}}</table>
</body>
</html>
`

const payrollTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Pay Report</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #999; padding: 0.4em 0.8em; text-align: right; }
th { background: #eee; }
td:first-child { text-align: left; }
</style>
</head>
<body>
<h1>Pay Report</h1>
<table>
<tr><th>Caregiver</th><th>Hours</th><th>Rate</th><th>Weekly Gross</th><th>Monthly Gross</th></tr>
{{range .Rows}}<tr><td>{{.Name}}</td><td>{{.Hours}}</td><td>${{.Rate}}</td><td>${{.Weekly}}</td><td>${{.Monthly}}</td></tr>
{{end}}<tr><th>Total</th><th></th><th></th><th>${{.TotalWeekly}}</th><th>${{.TotalMonthly}}</th></tr>
</table>
</body>
</html>
`
