package services

import (
	"fmt"
	"strings"
)

// Export selectors accepted by ExportToCSV
const (
	ExportVisitors  = "visitors"
	ExportResidents = "residents"
	ExportGuards    = "guards"
	ExportAll       = "all"
)

// ExportToCSV builds the downloadable report: one section per selected entity
// type, each headed by an all-caps label line and a fixed header row, with a
// blank line between sections. Text fields are double-quoted with embedded
// quotes doubled.
func (s *DirectoryService) ExportToCSV(dataType string) string {
	var b strings.Builder

	if dataType == ExportVisitors || dataType == ExportAll {
		b.WriteString("VISITOR REQUESTS\n")
		b.WriteString("ID,Visitor Name,Phone,Purpose,Flat Number,Resident Name,Status,Timestamp,Checked By\n")
		for _, r := range s.GetAllVisitorRequests() {
			b.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s,%s,%s,%s,%s\n",
				r.ID,
				csvQuote(r.VisitorName),
				csvQuote(r.PhoneNumber),
				csvQuote(r.PurposeOfVisit),
				csvQuote(r.FlatNumber),
				csvQuote(r.ResidentName),
				csvQuote(r.Status),
				csvQuote(r.CreatedAt.Format("1/2/2006, 3:04:05 PM")),
				csvQuote(r.CheckedBy),
			))
		}
		b.WriteString("\n")
	}

	if dataType == ExportResidents || dataType == ExportAll {
		b.WriteString("RESIDENTS\n")
		b.WriteString("Flat Number,Name,Phone Number,Family Members Count,Temporary Guests Count\n")
		for _, r := range s.GetAllResidents() {
			b.WriteString(fmt.Sprintf("%s,%s,%s,%d,%d\n",
				csvQuote(r.FlatNumber),
				csvQuote(r.Name),
				csvQuote(r.PhoneNumber),
				len(r.FamilyMembers),
				len(r.TemporaryGuests),
			))
		}
		b.WriteString("\n")
	}

	if dataType == ExportGuards || dataType == ExportAll {
		b.WriteString("SECURITY GUARDS\n")
		b.WriteString("Employee ID,Name,Shift,Phone Number,Status,Check-in Time\n")
		for _, g := range s.GetAllGuards() {
			checkIn := g.CheckInTime
			if checkIn == "" {
				checkIn = "N/A"
			}
			b.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s,%s\n",
				csvQuote(g.EmployeeID),
				csvQuote(g.Name),
				csvQuote(g.Shift),
				csvQuote(g.PhoneNumber),
				csvQuote(g.Status),
				csvQuote(checkIn),
			))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// csvQuote wraps a field in double quotes, doubling embedded quotes so
// commas and quotes inside field values cannot break a row
func csvQuote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
