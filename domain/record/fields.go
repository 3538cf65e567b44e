package record

// Field names are fixed Arabic strings acting as the schema contract between
// the import step, the engines and the report generator. Renaming one breaks
// every consumer, so they live here as the single source of truth.
const (
	FieldFullName    = "اللقب و الاسم"
	FieldGender      = "الجنس"
	FieldBirthDate   = "تاريخ الميلاد"
	FieldClass       = "القسم"
	FieldInstitution = "المؤسسة"
	FieldDirectorate = "المديرية"

	FieldRepeatYear   = "هل هو معيد للسنة؟"
	FieldRepeatCount  = "عدد سنوات الإعادة"
	FieldSiblingCount = "عدد الإخوة"
	FieldFamilyRank   = "رتبته بين إخوته"
	FieldFamilyStatus = "الحالة العائلية"

	FieldFatherJob       = "مهنة الأب"
	FieldMotherJob       = "مهنة الأم"
	FieldFatherEducation = "المستوى الدراسي للأب"
	FieldMotherEducation = "المستوى الدراسي للأم"

	FieldChronicIllness = "هل يعاني من مرض مزمن؟"
	FieldIllnessKind    = "نوع المرض"

	FieldHasIssue   = "هل لديه مشكلة يريد مناقشتها مع مستشار التوجيه؟"
	FieldIssueKinds = "نوع المشكلة"

	FieldFavoriteSubjects  = "المواد المفضلة"
	FieldDifficultSubjects = "المواد التي يجد فيها صعوبة"
	FieldHobbies           = "الهوايات"

	FieldTermOneAverage = "معدل الفصل الأول"
	FieldTermTwoAverage = "معدل الفصل الثاني"
)

// Enumerated option values reused across engines and templates
const (
	GenderMale   = "ذكر"
	GenderFemale = "أنثى"

	AnswerYes = "نعم"
	AnswerNo  = "لا"
)
