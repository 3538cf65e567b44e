package narrative

import "murshid/domain/record"

// GenderedPhrase is one semantic slot with its two fixed grammatically
// gendered phrasings. This is pure templating keyed on the gender field,
// not grammar inference; the pair per slot is part of the output contract.
type GenderedPhrase struct {
	Masculine string
	Feminine  string
}

// For selects the phrasing for a student. Missing or unrecognized gender
// falls back to the masculine form, matching the source forms.
func (p GenderedPhrase) For(s record.Student) string {
	if s.IsFemale() {
		return p.Feminine
	}
	return p.Masculine
}

// Phrase slots used by the per-student narrative. %s / %.2f placeholders are
// filled by the generator in slot order.
var (
	phraseIntro = GenderedPhrase{
		Masculine: "التلميذ %s من قسم %s بمؤسسة %s",
		Feminine:  "التلميذة %s من قسم %s بمؤسسة %s",
	}
	phraseRepeat = GenderedPhrase{
		Masculine: "وهو معيد لهذه السنة",
		Feminine:  "وهي معيدة لهذه السنة",
	}
	phraseIllness = GenderedPhrase{
		Masculine: "يعاني من مرض مزمن (%s)",
		Feminine:  "تعاني من مرض مزمن (%s)",
	}
	phraseIssue = GenderedPhrase{
		Masculine: "أبدى رغبته في مناقشة مشكلة %s مع مستشار التوجيه",
		Feminine:  "أبدت رغبتها في مناقشة مشكلة %s مع مستشار التوجيه",
	}
	phraseAverages = GenderedPhrase{
		Masculine: "تحصل على معدل %s في الفصل الأول و%s في الفصل الثاني",
		Feminine:  "تحصلت على معدل %s في الفصل الأول و%s في الفصل الثاني",
	}
	phraseNoAverages = GenderedPhrase{
		Masculine: "لم تسجل له معدلات فصلية بعد",
		Feminine:  "لم تسجل لها معدلات فصلية بعد",
	}
	phraseImproved = GenderedPhrase{
		Masculine: "أي أنه سجل تحسنًا %s بين الفصلين",
		Feminine:  "أي أنها سجلت تحسنًا %s بين الفصلين",
	}
	phraseDeclined = GenderedPhrase{
		Masculine: "أي أنه سجل تراجعًا %s بين الفصلين",
		Feminine:  "أي أنها سجلت تراجعًا %s بين الفصلين",
	}
	phraseStable = GenderedPhrase{
		Masculine: "وقد حافظ على نفس المعدل بين الفصلين",
		Feminine:  "وقد حافظت على نفس المعدل بين الفصلين",
	}
)
