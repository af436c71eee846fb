package user

// User is an employee account. PasswordHash is set by the service; the
// plaintext password never reaches the repository.
type User struct {
	UserID       int     `json:"userId"`
	EmployeeID   string  `json:"employeeId"`
	Name         string  `json:"name"`
	DOB          *string `json:"dob,omitempty"`
	Department   string  `json:"department,omitempty"`
	Designation  string  `json:"designation,omitempty"`
	Salary       float64 `json:"salary,omitempty"`
	DateOfJoin   *string `json:"dateOfJoin,omitempty"`
	ContactNo    string  `json:"contactNo,omitempty"`
	Address      string  `json:"address,omitempty"`
	RDCID        *int    `json:"rdcId,omitempty"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
}
