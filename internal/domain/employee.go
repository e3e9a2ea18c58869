package domain

// Gender enumerates accepted gender codes.
type Gender string

const (
	GenderFemale Gender = "F"
	GenderMale   Gender = "M"
)

// Employee models a single employee record. ID is the hex form of the
// storage identifier and is empty until the record is persisted.
type Employee struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Gender    *Gender
}

// DeleteResult reports the outcome of a delete. A miss is not an error.
type DeleteResult struct {
	IsSuccessful bool
	Message      string
}
