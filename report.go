package main

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"

	"lg/fittrack-go-api/nutrition"
)

// getTargetsReport renders the caller's targets and their derivation as a PDF.
// GET /api/targets/report.
func (h *Handler) getTargetsReport(c *gin.Context) {
	resp, ok := h.storedTargets(c)
	if !ok {
		return
	}

	now := time.Now()
	pdf, err := renderTargetsPDF(resp.Profile, resp.Targets, now)
	if err != nil {
		log.Printf("[getTargetsReport] render failed for user %d: %v", c.GetInt("user_id"), err)
		apiError(c, http.StatusInternalServerError, "failed to render report")
		return
	}

	filename := fmt.Sprintf("targets-%s.pdf", now.Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// newReportPDF returns an A4 document and a translator from UTF-8 to cp1252,
// the encoding of the core fonts. Runes outside cp1252 come out as '.'.
func newReportPDF() (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	return pdf, pdf.UnicodeTranslatorFromDescriptor("")
}

// renderTargetsPDF lays out one A4 page: inputs, targets, then one row per
// derivation line.
func renderTargetsPDF(in nutrition.Profile, t nutrition.Targets, generatedAt time.Time) ([]byte, error) {
	pdf, tr := newReportPDF()
	pdf.SetTitle("Daily nutrition targets", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Daily nutrition targets")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated "+generatedAt.Format("2006-01-02 15:04"))
	pdf.Ln(12)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, title)
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 10)
	}
	row := func(label, value string) {
		pdf.CellFormat(60, 7, tr(label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, tr(value), "1", 1, "L", false, 0, "")
	}

	section("Profile")
	row("Height", fmt.Sprintf("%.1f cm", in.HeightCM))
	row("Weight", fmt.Sprintf("%.1f kg", in.WeightKG))
	row("Age", fmt.Sprintf("%d years", in.Age))
	row("Sex", string(in.Gender))
	row("Activity level", string(in.ActivityLevel))
	row("Fitness goal", string(in.Goal))
	if in.LocalFoodStyle != "" {
		row("Local food style", in.LocalFoodStyle)
	}
	pdf.Ln(6)

	section("Targets")
	row("Calories", fmt.Sprintf("%d kcal", t.Calories))
	row("Protein", fmt.Sprintf("%d g", t.ProteinG))
	row("Carbs", fmt.Sprintf("%d g", t.CarbsG))
	row("Fat", fmt.Sprintf("%d g", t.FatG))
	row("Exercise", fmt.Sprintf("%d kcal", t.ActivityCalories))
	row("BMR / TDEE", fmt.Sprintf("%d / %d kcal", t.BMR, t.TDEE))
	pdf.Ln(6)

	section("How these were calculated")
	for _, line := range t.Details.Lines() {
		pdf.MultiCell(0, 6, tr(line), "", "L", false)
		pdf.Ln(1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
