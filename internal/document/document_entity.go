package document

// Tata letak kolom tab "Documents". Tidak ada natural key:
// identitas baris hanya urutan append.
const (
	colCreatedAt    = "A"
	colEmail        = "B"
	colDocumentType = "C"
	colReason       = "D"
	colStatus       = "E"
)

const firstDataRow = 2

// StatusPending adalah status awal setiap request dokumen.
const StatusPending = "Pending"

type Record struct {
	Row          int
	Email        string
	DocumentType string
	Reason       string
	Status       string
}
