package domain

// Entry represents one translation mapping between two languages
type Entry struct {
	Primary   string
	Secondary string
}

// Less reports whether e orders strictly before other.
// Primary word is compared first, secondary word breaks ties.
func (e Entry) Less(other Entry) bool {
	if e.Primary != other.Primary {
		return e.Primary < other.Primary
	}
	return e.Secondary < other.Secondary
}

// Line returns the entry in dictionary file format
func (e Entry) Line() string {
	return e.Primary + "," + e.Secondary
}
