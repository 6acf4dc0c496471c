package holiday

// Tata letak kolom tab "Holidays". Kunci komposit: (name, date).
const (
	colName        = "A"
	colDate        = "B"
	colType        = "C"
	colDescription = "D"
)

const firstDataRow = 2

// DateLayout adalah format dd-mm-yyyy yang dipakai di path dan sel tanggal.
const DateLayout = "02-01-2006"

type Record struct {
	Row         int
	Name        string
	Date        string
	Type        string
	Description string
}
