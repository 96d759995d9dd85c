package kyc

import (
	"net/url"
	"time"

	kycDatamodel "github.com/sangamhr/kyc-portal/internal/core/datamodel/kyc"
)

// SubmitKYCDTO carries the raw form values. Everything arrives as a string;
// ToRecord applies the empty-string-to-NULL normalization uniformly to all
// optional fields. The employee code is deliberately absent: the record is
// bound to the session's identity, never to form input.
type SubmitKYCDTO struct {
	Name        string
	Department  string
	Designation string

	DateOfJoining string
	DateOfBirth   string
	PANNumber     string
	AadharNumber  string
	UANNumber     string
	Band          string
	Plant         string
	Education     string
	ReportingTo   string
	HOD           string

	PermanentAddress string
	TemporaryAddress string

	TitleNominee1     string
	Nominee1          string
	Nominee1Birthdate string
	Nominee1Percent   string
	TitleNominee2     string
	Nominee2          string
	Nominee2Birthdate string
	Nominee2Percent   string
	Nominee3          string
	Nominee3Birthdate string
	Nominee3Percent   string

	TitleFather          string
	FatherName           string
	FatherBirthdate      string
	TitleMother          string
	MotherName           string
	MotherBirthdate      string
	TitleFatherInLaw     string
	FatherInLawName      string
	FatherInLawBirthdate string
	TitleMotherInLaw     string
	MotherInLawName      string
	MotherInLawBirthdate string
	TitleSpouse          string
	SpouseName           string
	SpouseBirthdate      string

	TitleChild1     string
	Child1Name      string
	Child1Birthdate string
	TitleChild2     string
	Child2Name      string
	Child2Birthdate string
	TitleChild3     string
	Child3Name      string
	Child3Birthdate string
	TitleChild4     string
	Child4Name      string
	Child4Birthdate string
	Child5Name      string
	Child5Birthdate string

	Remarks string

	SelfInsurance        string
	SpouseInsurance      string
	FatherInsurance      string
	MotherInsurance      string
	FatherInLawInsurance string
	MotherInLawInsurance string
	Child1Insurance      string
	Child2Insurance      string
	Child3Insurance      string
	Child4Insurance      string
}

// ValidationError is a user-facing form validation failure.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d SubmitKYCDTO) Validate() error {
	if d.Name == "" {
		return ValidationError{Msg: "name is required"}
	}
	return nil
}

// SubmitKYCDTOFromForm maps the posted HTML form into the DTO.
func SubmitKYCDTOFromForm(form url.Values) SubmitKYCDTO {
	return SubmitKYCDTO{
		Name:        form.Get("name"),
		Department:  form.Get("department"),
		Designation: form.Get("designation"),

		DateOfJoining: form.Get("date_of_joining"),
		DateOfBirth:   form.Get("date_of_birth"),
		PANNumber:     form.Get("pan_number"),
		AadharNumber:  form.Get("aadhar_number"),
		UANNumber:     form.Get("uan_number"),
		Band:          form.Get("band"),
		Plant:         form.Get("plant"),
		Education:     form.Get("education"),
		ReportingTo:   form.Get("reporting_first"),
		HOD:           form.Get("hod"),

		PermanentAddress: form.Get("permanent_address"),
		TemporaryAddress: form.Get("temporary_address"),

		TitleNominee1:     form.Get("title_nominee1"),
		Nominee1:          form.Get("nominee1"),
		Nominee1Birthdate: form.Get("nominee1_birthdate"),
		Nominee1Percent:   form.Get("nominee1_percent"),
		TitleNominee2:     form.Get("title_nominee2"),
		Nominee2:          form.Get("nominee2"),
		Nominee2Birthdate: form.Get("nominee2_birthdate"),
		Nominee2Percent:   form.Get("nominee2_percent"),
		Nominee3:          form.Get("nominee3"),
		Nominee3Birthdate: form.Get("nominee3_birthdate"),
		Nominee3Percent:   form.Get("nominee3_percent"),

		TitleFather:          form.Get("title_father"),
		FatherName:           form.Get("father_name"),
		FatherBirthdate:      form.Get("father_birthdate"),
		TitleMother:          form.Get("title_mother"),
		MotherName:           form.Get("mother_name"),
		MotherBirthdate:      form.Get("mother_birthdate"),
		TitleFatherInLaw:     form.Get("title_fil"),
		FatherInLawName:      form.Get("father_inlaw_name"),
		FatherInLawBirthdate: form.Get("father_inlaw_birthdate"),
		TitleMotherInLaw:     form.Get("title_mil"),
		MotherInLawName:      form.Get("mother_inlaw_name"),
		MotherInLawBirthdate: form.Get("mother_inlaw_birthdate"),
		TitleSpouse:          form.Get("title_spouse"),
		SpouseName:           form.Get("spouse_name"),
		SpouseBirthdate:      form.Get("spouse_birthdate"),

		TitleChild1:     form.Get("title_child1"),
		Child1Name:      form.Get("children_name1"),
		Child1Birthdate: form.Get("children_name1_birthdate"),
		TitleChild2:     form.Get("title_child2"),
		Child2Name:      form.Get("children_name2"),
		Child2Birthdate: form.Get("children_name2_birthdate"),
		TitleChild3:     form.Get("title_child3"),
		Child3Name:      form.Get("children_name3"),
		Child3Birthdate: form.Get("children_name3_birthdate"),
		TitleChild4:     form.Get("title_child4"),
		Child4Name:      form.Get("children_name4"),
		Child4Birthdate: form.Get("children_name4_birthdate"),
		Child5Name:      form.Get("children_name5"),
		Child5Birthdate: form.Get("children_name5_birthdate"),

		Remarks: form.Get("remarks"),

		SelfInsurance:        form.Get("self_insurance"),
		SpouseInsurance:      form.Get("spouse_insurance"),
		FatherInsurance:      form.Get("father_insurance"),
		MotherInsurance:      form.Get("mother_insurance"),
		FatherInLawInsurance: form.Get("fil_insurance"),
		MotherInLawInsurance: form.Get("mil_insurance"),
		Child1Insurance:      form.Get("child1_insurance"),
		Child2Insurance:      form.Get("child2_insurance"),
		Child3Insurance:      form.Get("child3_insurance"),
		Child4Insurance:      form.Get("child4_insurance"),
	}
}

// optional turns an empty form value into NULL.
func optional(value string) *string {
	if value == "" {
		return nil
	}
	v := value
	return &v
}

// ToRecord builds the storable record for the given employee code.
func (d SubmitKYCDTO) ToRecord(employeeCode string, now time.Time) *kycDatamodel.Record {
	return &kycDatamodel.Record{
		EmployeeCode: employeeCode,
		Name:         d.Name,
		Department:   optional(d.Department),
		Designation:  optional(d.Designation),

		DateOfJoining: optional(d.DateOfJoining),
		DateOfBirth:   optional(d.DateOfBirth),
		PANNumber:     optional(d.PANNumber),
		AadharNumber:  optional(d.AadharNumber),
		UANNumber:     optional(d.UANNumber),
		Band:          optional(d.Band),
		Plant:         optional(d.Plant),
		Education:     optional(d.Education),
		ReportingTo:   optional(d.ReportingTo),
		HOD:           optional(d.HOD),

		PermanentAddress: optional(d.PermanentAddress),
		TemporaryAddress: optional(d.TemporaryAddress),

		TitleNominee1:     optional(d.TitleNominee1),
		Nominee1:          optional(d.Nominee1),
		Nominee1Birthdate: optional(d.Nominee1Birthdate),
		Nominee1Percent:   optional(d.Nominee1Percent),
		TitleNominee2:     optional(d.TitleNominee2),
		Nominee2:          optional(d.Nominee2),
		Nominee2Birthdate: optional(d.Nominee2Birthdate),
		Nominee2Percent:   optional(d.Nominee2Percent),
		Nominee3:          optional(d.Nominee3),
		Nominee3Birthdate: optional(d.Nominee3Birthdate),
		Nominee3Percent:   optional(d.Nominee3Percent),

		TitleFather:          optional(d.TitleFather),
		FatherName:           optional(d.FatherName),
		FatherBirthdate:      optional(d.FatherBirthdate),
		TitleMother:          optional(d.TitleMother),
		MotherName:           optional(d.MotherName),
		MotherBirthdate:      optional(d.MotherBirthdate),
		TitleFatherInLaw:     optional(d.TitleFatherInLaw),
		FatherInLawName:      optional(d.FatherInLawName),
		FatherInLawBirthdate: optional(d.FatherInLawBirthdate),
		TitleMotherInLaw:     optional(d.TitleMotherInLaw),
		MotherInLawName:      optional(d.MotherInLawName),
		MotherInLawBirthdate: optional(d.MotherInLawBirthdate),
		TitleSpouse:          optional(d.TitleSpouse),
		SpouseName:           optional(d.SpouseName),
		SpouseBirthdate:      optional(d.SpouseBirthdate),

		TitleChild1:     optional(d.TitleChild1),
		Child1Name:      optional(d.Child1Name),
		Child1Birthdate: optional(d.Child1Birthdate),
		TitleChild2:     optional(d.TitleChild2),
		Child2Name:      optional(d.Child2Name),
		Child2Birthdate: optional(d.Child2Birthdate),
		TitleChild3:     optional(d.TitleChild3),
		Child3Name:      optional(d.Child3Name),
		Child3Birthdate: optional(d.Child3Birthdate),
		TitleChild4:     optional(d.TitleChild4),
		Child4Name:      optional(d.Child4Name),
		Child4Birthdate: optional(d.Child4Birthdate),
		Child5Name:      optional(d.Child5Name),
		Child5Birthdate: optional(d.Child5Birthdate),

		Remarks: optional(d.Remarks),

		SelfInsurance:        optional(d.SelfInsurance),
		SpouseInsurance:      optional(d.SpouseInsurance),
		FatherInsurance:      optional(d.FatherInsurance),
		MotherInsurance:      optional(d.MotherInsurance),
		FatherInLawInsurance: optional(d.FatherInLawInsurance),
		MotherInLawInsurance: optional(d.MotherInLawInsurance),
		Child1Insurance:      optional(d.Child1Insurance),
		Child2Insurance:      optional(d.Child2Insurance),
		Child3Insurance:      optional(d.Child3Insurance),
		Child4Insurance:      optional(d.Child4Insurance),

		SubmittedAt: now,
	}
}
