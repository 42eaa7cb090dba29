package restaurant

// MenuFileKind tags the uploaded menu representation. A restaurant has either
// a PDF menu or an image menu, never both.
type MenuFileKind string

const (
	MenuFileNone  MenuFileKind = "NONE"
	MenuFilePDF   MenuFileKind = "PDF"
	MenuFileImage MenuFileKind = "IMAGE"
)

// MenuFile is the tagged union {None, PDF(ref), Image(ref)}. Ref is the
// opaque file-storage reference and is empty iff Kind is MenuFileNone.
type MenuFile struct {
	Kind MenuFileKind
	Ref  string
}

type Restaurant struct {
	ID           int64
	UserID       int64
	Name         string
	Description  string
	Address      string
	Phone        string
	Email        string
	CuisineType  string
	OpeningHours string
	ClosingHours string
	Rating       float64
	TotalReviews int
	IsVerified   bool
	MenuFile     MenuFile
	Categories   []string
}

// SettingsParams carries a partial settings update; nil fields are left as-is.
type SettingsParams struct {
	Name         *string
	Description  *string
	Address      *string
	Phone        *string
	CuisineType  *string
	OpeningHours *string
	ClosingHours *string
}
