package client

import "time"

type Account struct {
	ID         string `json:"id"`
	LoginID    string `json:"loginId"`
	EmployeeID string `json:"employeeId"`
	Role       string `json:"role"`
	Verified   bool   `json:"isVerified"`
	FullName   string `json:"fullName"`
}

type Attendance struct {
	ID           string     `json:"id"`
	AccountID    string     `json:"accountId"`
	Date         string     `json:"date"`
	CheckIn      *time.Time `json:"checkIn"`
	CheckOut     *time.Time `json:"checkOut"`
	Status       string     `json:"status"`
	WorkingHours *float64   `json:"workingHours"`
	EmployeeName string     `json:"employeeName,omitempty"`
}

type Leave struct {
	ID             string     `json:"id"`
	AccountID      string     `json:"accountId"`
	LeaveType      string     `json:"leaveType"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        time.Time  `json:"endDate"`
	Remarks        string     `json:"remarks"`
	Status         string     `json:"status"`
	ReviewedBy     *string    `json:"reviewedBy,omitempty"`
	ReviewDate     *time.Time `json:"reviewDate,omitempty"`
	ReviewComments string     `json:"reviewComments,omitempty"`
	EmployeeName   string     `json:"employeeName"`
	CreatedAt      time.Time  `json:"createdAt"`
}

type NewLeave struct {
	LeaveType string `json:"leaveType"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Remarks   string `json:"remarks,omitempty"`
}

type Salary struct {
	ID           string  `json:"id"`
	AccountID    string  `json:"accountId"`
	BasicPay     float64 `json:"basicPay"`
	Allowances   float64 `json:"allowances"`
	Deductions   float64 `json:"deductions"`
	NetSalary    float64 `json:"netSalary"`
	EmployeeName string  `json:"employeeName,omitempty"`
}

// SalaryUpdate leaves nil components unchanged.
type SalaryUpdate struct {
	BasicPay   *float64 `json:"basicPay,omitempty"`
	Allowances *float64 `json:"allowances,omitempty"`
	Deductions *float64 `json:"deductions,omitempty"`
}

type Profile struct {
	ID             string `json:"id"`
	AccountID      string `json:"accountId"`
	FullName       string `json:"fullName"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	JobTitle       string `json:"jobTitle"`
	Department     string `json:"department"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// ProfileUpdate applies only non-empty fields.
type ProfileUpdate struct {
	FullName       string `json:"fullName,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Address        string `json:"address,omitempty"`
	JobTitle       string `json:"jobTitle,omitempty"`
	Department     string `json:"department,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

type DirectoryEntry struct {
	Profile
	LoginID    string  `json:"loginId"`
	EmployeeID string  `json:"employeeId"`
	Role       string  `json:"role"`
	Salary     *Salary `json:"salary"`
}
