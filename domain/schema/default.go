package schema

import "murshid/domain/record"

var yesNo = []string{record.AnswerYes, record.AnswerNo}

// Subjects is the fixed subject list the grade sheets carry, in sheet order
var Subjects = []string{
	"اللغة العربية",
	"الرياضيات",
	"اللغة الفرنسية",
	"اللغة الإنجليزية",
	"العلوم الطبيعية",
	"العلوم الفيزيائية",
	"التاريخ والجغرافيا",
	"التربية الإسلامية",
	"التربية المدنية",
}

// IssueKinds is the option set of the "problem to discuss" follow-up question
var IssueKinds = []string{"دراسية", "عائلية", "نفسية", "صحية", "أخرى"}

// Default returns the counselor questionnaire as printed, with every
// conditional question bound to its governor.
func Default() *Registry {
	return New([]Section{
		{
			Title: "معلومات عامة",
			Fields: []Field{
				{Name: record.FieldFullName, Kind: KindText},
				{Name: record.FieldGender, Kind: KindSelect, Options: []string{record.GenderMale, record.GenderFemale}, Filterable: true},
				{Name: record.FieldBirthDate, Kind: KindDate},
				{Name: record.FieldClass, Kind: KindSelect, Filterable: true},
				{Name: record.FieldInstitution, Kind: KindText, Filterable: true},
				{Name: record.FieldDirectorate, Kind: KindText, Filterable: true},
			},
		},
		{
			Title: "المسار الدراسي",
			Fields: []Field{
				{Name: record.FieldRepeatYear, Kind: KindSelect, Options: yesNo, Filterable: true},
				{Name: record.FieldRepeatCount, Kind: KindNumber, DependsOn: &Dependency{Governor: record.FieldRepeatYear, RequiredValue: record.AnswerYes}},
				{Name: record.FieldTermOneAverage, Kind: KindNumber},
				{Name: record.FieldTermTwoAverage, Kind: KindNumber},
				{Name: record.FieldFavoriteSubjects, Kind: KindMultiSelect, Options: Subjects},
				{Name: record.FieldDifficultSubjects, Kind: KindMultiSelect, Options: Subjects, Filterable: true},
			},
		},
		{
			Title: "الوضع العائلي",
			Fields: []Field{
				{Name: record.FieldSiblingCount, Kind: KindNumber},
				{Name: record.FieldFamilyRank, Kind: KindNumber},
				{Name: record.FieldFamilyStatus, Kind: KindSelect, Options: []string{"يعيشان معا", "منفصلان", "الأب متوفى", "الأم متوفاة", "متوفيان"}, Filterable: true},
				{Name: record.FieldFatherJob, Kind: KindText},
				{Name: record.FieldMotherJob, Kind: KindText},
				{Name: record.FieldFatherEducation, Kind: KindSelect, Options: []string{"ابتدائي", "متوسط", "ثانوي", "جامعي", "بدون مستوى"}},
				{Name: record.FieldMotherEducation, Kind: KindSelect, Options: []string{"ابتدائي", "متوسط", "ثانوي", "جامعي", "بدون مستوى"}},
			},
		},
		{
			Title: "الجانب الصحي والنفسي",
			Fields: []Field{
				{Name: record.FieldChronicIllness, Kind: KindSelect, Options: yesNo, Filterable: true},
				{Name: record.FieldIllnessKind, Kind: KindText, DependsOn: &Dependency{Governor: record.FieldChronicIllness, RequiredValue: record.AnswerYes}},
				{Name: record.FieldHasIssue, Kind: KindSelect, Options: yesNo, Filterable: true},
				{Name: record.FieldIssueKinds, Kind: KindMultiSelect, Options: IssueKinds, DependsOn: &Dependency{Governor: record.FieldHasIssue, RequiredValue: record.AnswerYes}, Filterable: true},
				{Name: record.FieldHobbies, Kind: KindMultiSelect, Options: []string{"القراءة", "الرياضة", "الرسم", "الموسيقى", "الإعلام الآلي"}},
			},
		},
	})
}
