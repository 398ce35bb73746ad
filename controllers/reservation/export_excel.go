package reservationControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Sheylasoledispa/veterinaria-pozovet/middleware"
	"github.com/Sheylasoledispa/veterinaria-pozovet/services/reservation"
)

// ExportReservationsToExcel writes every reservation (admin view, same ?q=
// filter as the list endpoint) as an .xlsx download.
func ExportReservationsToExcel(engine *reservation.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		reservations, err := engine.ListAll(user, c.Query("q"))
		if err != nil {
			c.JSON(statusForError(err), gin.H{"error": err.Error()})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Reservations")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"InvoiceCode", "Customer", "NationalID", "Status",
			"Total", "Notes", "Lines", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for i := range reservations {
			r := &reservations[i]
			row := sheet.AddRow()
			row.AddCell().SetValue(r.InvoiceCode)
			row.AddCell().SetValue(r.User.FullName())
			row.AddCell().SetValue(r.User.NationalID)
			row.AddCell().SetValue(r.Status.Name)
			row.AddCell().SetValue(r.Total.StringFixed(2))
			row.AddCell().SetValue(r.Notes)
			row.AddCell().SetValue(len(r.Items))
			row.AddCell().SetValue(r.CreatedAt.Format("2006-01-02 15:04"))
		}

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", `attachment; filename="reservations.xlsx"`)
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}
