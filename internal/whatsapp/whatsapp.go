package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"dapuribu-be/internal/currency"

	qrcode "github.com/skip2/go-qrcode"
)

// OrderLine is one item of the message body.
type OrderLine struct {
	Name     string
	Quantity int
	Subtotal float64
}

// OrderSummary carries everything the handoff message needs.
type OrderSummary struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	EventDate       time.Time
	Notes           string
	Lines           []OrderLine
	Total           float64
}

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatDate renders "28 Agustus 2026".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), indonesianMonths[t.Month()-1], t.Year())
}

// ComposeMessage builds the order summary the customer forwards to the
// caterer. Wording matches what customers already know from the store.
func ComposeMessage(s OrderSummary) string {
	var b strings.Builder

	b.WriteString("Halo! Saya ingin memesan catering dengan detail berikut:\n\n")
	fmt.Fprintf(&b, "Nama: %s\n", s.CustomerName)
	fmt.Fprintf(&b, "No HP: %s\n", s.CustomerPhone)
	fmt.Fprintf(&b, "Alamat: %s\n", s.CustomerAddress)
	fmt.Fprintf(&b, "Tanggal Acara: %s\n\n", FormatDate(s.EventDate))

	b.WriteString("Pesanan:\n")
	for _, l := range s.Lines {
		fmt.Fprintf(&b, "- %s x%d = %s\n", l.Name, l.Quantity, currency.FormatIDR(l.Subtotal))
	}

	notes := s.Notes
	if notes == "" {
		notes = "-"
	}
	fmt.Fprintf(&b, "\nCatatan: %s\n", notes)
	fmt.Fprintf(&b, "Total: %s\n\n", currency.FormatIDR(s.Total))
	b.WriteString("Terima kasih")

	return b.String()
}

// Link builds the wa.me deep link for the given phone in international
// format without the plus sign, e.g. "6281945062598".
func Link(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))
}

// QRCode renders the deep link as a PNG, sized for a printed order slip.
func QRCode(link string, size int) ([]byte, error) {
	return qrcode.Encode(link, qrcode.Medium, size)
}
