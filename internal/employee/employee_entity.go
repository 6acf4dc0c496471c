package employee

// Tata letak kolom tab "Employees".
// H dan I di-backfill setelah folder Drive dibuat; ada jendela singkat
// di mana baris sudah ada tanpa keduanya.
const (
	colCreatedAt   = "A"
	colEmail       = "B"
	colName        = "C"
	colPosition    = "D"
	colDepartment  = "E"
	colContact     = "F"
	colJoiningDate = "G"
	colPhotoFileID = "H"
	colFolderID    = "I"
)

// firstDataRow: baris 1 adalah header tab.
const firstDataRow = 2

// Record adalah satu baris tab Employees. Email adalah identitas stabil
// karyawan; Row hanya valid sesaat setelah lookup.
type Record struct {
	Row          int
	Email        string
	Name         string
	Position     string
	Department   string
	Contact      string
	JoiningDate  string
	PhotoFileID  string
	BaseFolderID string
}
