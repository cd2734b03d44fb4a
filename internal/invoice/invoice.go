// Package invoice renders a bill as a printable PDF.
package invoice

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"pharmacy/m/domain"
)

// Data is everything printed on one invoice. Order and Customer are optional
// because bills only reference them by key.
type Data struct {
	Bill     domain.Bill
	Order    *domain.Order
	Customer *domain.Customer
	Drugs    []domain.OrderedDrug
}

// Render lays out d on a single A4 page and returns the PDF bytes.
func Render(d Data) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 90, 60)
	pdf.CellFormat(0, 10, "Pharmacy Invoice", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, "Bill", "1", 1, "C", false, 0, "")
	addDetail(pdf, "Order ID", fmt.Sprintf("%d", d.Bill.OrderID), true)
	addDetail(pdf, "Customer SSN", d.Bill.CustomerSSN, true)
	if d.Customer != nil {
		addDetail(pdf, "Customer", d.Customer.FirstName+" "+d.Customer.LastName, false)
	}
	if d.Order != nil {
		addDetail(pdf, "Order Date", d.Order.OrderDate.Format("2006-01-02"), false)
		addDetail(pdf, "Prescription ID", fmt.Sprintf("%d", d.Order.PrescriptionID), false)
		addDetail(pdf, "Employee ID", fmt.Sprintf("%d", d.Order.EmployeeID), false)
	}

	if len(d.Drugs) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 10, "Ordered Drugs", "1", 1, "C", false, 0, "")
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(70, 8, "Drug", "1", 0, "", false, 0, "")
		pdf.CellFormat(50, 8, "Batch", "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 8, "Quantity", "1", 0, "R", false, 0, "")
		pdf.CellFormat(0, 8, "Price", "1", 1, "R", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, drug := range d.Drugs {
			pdf.CellFormat(70, 8, drug.DrugName, "1", 0, "", false, 0, "")
			pdf.CellFormat(50, 8, drug.BatchNumber, "1", 0, "", false, 0, "")
			pdf.CellFormat(30, 8, intOrDash(drug.Quantity), "1", 0, "R", false, 0, "")
			pdf.CellFormat(0, 8, moneyOrDash(drug.Price), "1", 1, "R", false, 0, "")
		}
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "Totals", "1", 1, "C", false, 0, "")
	addDetail(pdf, "Total Amount", moneyOrDash(d.Bill.TotalAmount), true)
	addDetail(pdf, "Customer Payment", moneyOrDash(d.Bill.CustomerPayment), true)
	if d.Bill.TotalAmount != nil && d.Bill.CustomerPayment != nil {
		addDetail(pdf, "Change", fmt.Sprintf("%.2f", *d.Bill.CustomerPayment-*d.Bill.TotalAmount), false)
	}

	pdf.SetY(pdf.GetY() + 12)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 10, "This is a computer generated invoice", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice for order %d: %w", d.Bill.OrderID, err)
	}
	return buf.Bytes(), nil
}

func addDetail(pdf *gofpdf.Fpdf, label, value string, bold bool) {
	if bold {
		pdf.SetFont("Arial", "B", 11)
	} else {
		pdf.SetFont("Arial", "", 10)
	}
	pdf.CellFormat(50, 9, label, "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 9, value, "1", 1, "", false, 0, "")
}

func moneyOrDash(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}

func intOrDash(v *int64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}
