package kyc

import "time"

// Record is one row in the employee_kyc table: the full KYC form for a single
// employee. Optional fields are pointers so an empty submission is stored as
// NULL rather than the empty string. A record is written exactly once, at
// submission time, and never updated afterwards.
type Record struct {
	ID           int64  `gorm:"primaryKey"`
	EmployeeCode string `gorm:"column:employee_code;uniqueIndex;not null"`

	Name        string  `gorm:"column:name;not null"`
	Department  *string `gorm:"column:department"`
	Designation *string `gorm:"column:designation"`

	DateOfJoining *string `gorm:"column:date_of_joining"`
	DateOfBirth   *string `gorm:"column:date_of_birth"`
	PANNumber     *string `gorm:"column:pan_number"`
	AadharNumber  *string `gorm:"column:aadhar_number"`
	UANNumber     *string `gorm:"column:uan_number"`
	Band          *string `gorm:"column:band"`
	Plant         *string `gorm:"column:plant"`
	Education     *string `gorm:"column:education"`
	ReportingTo   *string `gorm:"column:reporting_first"`
	HOD           *string `gorm:"column:hod"`

	PermanentAddress *string `gorm:"column:permanent_address"`
	TemporaryAddress *string `gorm:"column:temporary_address"`

	TitleNominee1     *string `gorm:"column:title_nominee1"`
	Nominee1          *string `gorm:"column:nominee1"`
	Nominee1Birthdate *string `gorm:"column:nominee1_birthdate"`
	Nominee1Percent   *string `gorm:"column:nominee1_percent"`
	TitleNominee2     *string `gorm:"column:title_nominee2"`
	Nominee2          *string `gorm:"column:nominee2"`
	Nominee2Birthdate *string `gorm:"column:nominee2_birthdate"`
	Nominee2Percent   *string `gorm:"column:nominee2_percent"`
	Nominee3          *string `gorm:"column:nominee3"`
	Nominee3Birthdate *string `gorm:"column:nominee3_birthdate"`
	Nominee3Percent   *string `gorm:"column:nominee3_percent"`

	TitleFather          *string `gorm:"column:title_father"`
	FatherName           *string `gorm:"column:father_name"`
	FatherBirthdate      *string `gorm:"column:father_birthdate"`
	TitleMother          *string `gorm:"column:title_mother"`
	MotherName           *string `gorm:"column:mother_name"`
	MotherBirthdate      *string `gorm:"column:mother_birthdate"`
	TitleFatherInLaw     *string `gorm:"column:title_fil"`
	FatherInLawName      *string `gorm:"column:father_inlaw_name"`
	FatherInLawBirthdate *string `gorm:"column:father_inlaw_birthdate"`
	TitleMotherInLaw     *string `gorm:"column:title_mil"`
	MotherInLawName      *string `gorm:"column:mother_inlaw_name"`
	MotherInLawBirthdate *string `gorm:"column:mother_inlaw_birthdate"`
	TitleSpouse          *string `gorm:"column:title_spouse"`
	SpouseName           *string `gorm:"column:spouse_name"`
	SpouseBirthdate      *string `gorm:"column:spouse_birthdate"`

	TitleChild1     *string `gorm:"column:title_child1"`
	Child1Name      *string `gorm:"column:children_name1"`
	Child1Birthdate *string `gorm:"column:children_name1_birthdate"`
	TitleChild2     *string `gorm:"column:title_child2"`
	Child2Name      *string `gorm:"column:children_name2"`
	Child2Birthdate *string `gorm:"column:children_name2_birthdate"`
	TitleChild3     *string `gorm:"column:title_child3"`
	Child3Name      *string `gorm:"column:children_name3"`
	Child3Birthdate *string `gorm:"column:children_name3_birthdate"`
	TitleChild4     *string `gorm:"column:title_child4"`
	Child4Name      *string `gorm:"column:children_name4"`
	Child4Birthdate *string `gorm:"column:children_name4_birthdate"`
	Child5Name      *string `gorm:"column:children_name5"`
	Child5Birthdate *string `gorm:"column:children_name5_birthdate"`

	Remarks *string `gorm:"column:remarks"`

	SelfInsurance        *string `gorm:"column:self_insurance"`
	SpouseInsurance      *string `gorm:"column:spouse_insurance"`
	FatherInsurance      *string `gorm:"column:father_insurance"`
	MotherInsurance      *string `gorm:"column:mother_insurance"`
	FatherInLawInsurance *string `gorm:"column:fil_insurance"`
	MotherInLawInsurance *string `gorm:"column:mil_insurance"`
	Child1Insurance      *string `gorm:"column:child1_insurance"`
	Child2Insurance      *string `gorm:"column:child2_insurance"`
	Child3Insurance      *string `gorm:"column:child3_insurance"`
	Child4Insurance      *string `gorm:"column:child4_insurance"`

	SubmittedAt time.Time `gorm:"column:submitted_at;default:now()"`
}

func (Record) TableName() string {
	return "employee_kyc"
}
