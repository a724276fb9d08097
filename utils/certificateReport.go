package utils

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// CertificateReportData carries everything the certificate PDF needs.
type CertificateReportData struct {
	NombreEstudiante string
	CedulaEstudiante string
	NombreProfesor   string
	NombreCurso      string
	Titulo           string
	Descripcion      string
	FechaExpedicion  time.Time
}

// RenderCertificatePDF renders a landscape certificate and returns the PDF
// bytes.
func RenderCertificatePDF(data CertificateReportData) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	w, h := pdf.GetPageSize()

	// Frame
	pdf.SetDrawColor(14, 140, 195)
	pdf.SetLineWidth(6)
	pdf.Rect(8, 8, w-16, h-16, "D")

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetY(30)
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(2, 28, 39)
	pdf.CellFormat(0, 8, tr("Academia de Formación de Oficios Profesionales y Artes, C.A"), "", 1, "C", false, 0, "")

	pdf.Ln(10)
	pdf.CellFormat(0, 8, tr("Otorga a"), "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 26)
	pdf.CellFormat(0, 12, tr(data.NombreEstudiante), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("C.I. %s", data.CedulaEstudiante)), "", 1, "C", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr(data.Titulo), "", 1, "C", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, 7, tr(data.Descripcion), "", "C", false)

	pdf.Ln(6)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Curso: %s", data.NombreCurso)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Instructor: %s", data.NombreProfesor)), "", 1, "C", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 11)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Expedido el %s", data.FechaExpedicion.Format("02/01/2006"))), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
