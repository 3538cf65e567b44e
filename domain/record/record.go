package record

// Student is one questionnaire record: a mapping from field name to its
// normalized answer. A missing field is indistinguishable from an empty
// answer for every consumer; nothing in the engines may crash on absence.
type Student map[string]Value

// FromRaw normalizes a flat imported mapping into a Student
func FromRaw(raw map[string]interface{}) Student {
	s := make(Student, len(raw))
	for field, value := range raw {
		s[field] = NormalizeValue(value)
	}
	return s
}

// Get returns the answer for a field, and whether the field is present
func (s Student) Get(field string) (Value, bool) {
	v, ok := s[field]
	return v, ok
}

// Scalar returns the answer text for a field, empty when absent
func (s Student) Scalar(field string) string {
	return s[field].String()
}

// List returns the answer options for a field, nil when absent
func (s Student) List(field string) []string {
	return s[field].List()
}

// Number parses the field as a finite number
func (s Student) Number(field string) (float64, bool) {
	return s[field].Number()
}

// Answered reports whether the field carries a non-empty answer
func (s Student) Answered(field string) bool {
	v, ok := s[field]
	return ok && !v.IsEmpty()
}

// IsFemale reports whether the gender field holds the female option.
// The male phrasing is the fallback for missing or malformed gender, which
// matches how the source forms render an unanswered record.
func (s Student) IsFemale() bool {
	return s.Scalar(FieldGender) == GenderFemale
}

// Clone returns a deep copy; engines hand clones outward so callers can
// never alias internal state
func (s Student) Clone() Student {
	out := make(Student, len(s))
	for field, v := range s {
		if v.Kind() == KindMulti {
			out[field] = Multi(v.List())
		} else {
			out[field] = v
		}
	}
	return out
}

// Identity is the composite used downstream to tell students apart.
// It is not guaranteed unique; the questionnaire has no primary key.
type Identity struct {
	Name        string
	Class       string
	Institution string
}

// Identity derives the composite identity for a student
func (s Student) Identity() Identity {
	return Identity{
		Name:        s.Scalar(FieldFullName),
		Class:       s.Scalar(FieldClass),
		Institution: s.Scalar(FieldInstitution),
	}
}
