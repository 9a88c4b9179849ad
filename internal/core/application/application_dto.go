package application

type applicationRequest struct {
	PropertyName string  `json:"propertyName"`
	UnitName     string  `json:"unitName"`
	AreaName     string  `json:"areaName"`
	Address      string  `json:"address"`
	MonthlyPrice float64 `json:"monthlyPrice"`

	ApplicantName    string  `json:"applicantName"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	DateOfBirth      string  `json:"dateOfBirth"`
	CurrentAddress   string  `json:"currentAddress"`
	EmploymentStatus string  `json:"employmentStatus"`
	MonthlyIncome    float64 `json:"monthlyIncome"`
}
