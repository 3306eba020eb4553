package sentiment

// Lexicon pairs the keyword stems that signal each side of an opinion about AI.
type Lexicon struct {
	Name     string
	Positive []string
	Negative []string
}

// MirrorEnglish scores the first answer given to the mirror chat.
var MirrorEnglish = Lexicon{
	Name: "mirror-en",
	Positive: []string{
		"amplif", "enhance", "partner", "collaborat", "help", "assist", "support", "together",
		"positive", "develop", "growth", "symbiosis", "evolution", "liberation", "good",
		"excellent", "empower", "augment",
	},
	Negative: []string{
		"replace", "threat", "substitute", "take away", "negative", "concern", "worry", "problem",
		"danger", "dependent", "erosion", "control", "surveillance", "bad", "serious", "destroy",
		"eliminate",
	},
}

// PerspectiveInitial scores the first Korean answer of the perspective chat.
var PerspectiveInitial = Lexicon{
	Name:     "perspective-ko",
	Positive: []string{"증폭", "향상", "파트너", "협력", "도움", "보조", "지원", "함께", "긍정", "발전", "성장"},
	Negative: []string{"대체", "위협", "교체", "빼앗", "부정", "우려", "걱정", "문제", "위험", "의존"},
}

// PerspectiveExtended scores the whole Korean conversation once it has more than one answer.
var PerspectiveExtended = Lexicon{
	Name:     "perspective-ko-extended",
	Positive: append(append([]string(nil), PerspectiveInitial.Positive...), "좋", "훌륭"),
	Negative: append(append([]string(nil), PerspectiveInitial.Negative...), "나쁘", "심각"),
}

// MirroringSystem covers stems, doubt expressions and English words used by the mirroring
// system page.
var MirroringSystem = Lexicon{
	Name: "mirroring-system",
	Positive: []string{
		"발전", "진보", "희망", "도움", "편리", "혁신", "성장", "효율", "창조", "자유", "기회", "미래",
		"좋", "행복", "사랑", "감사", "신나", "즐거", "기쁘", "맞아", "동의", "그래", "응", "네", "물론",
		"당연", "amazing", "great", "helpful", "good", "love", "hope", "growth", "freedom",
		"innovation", "yes", "agree",
	},
	Negative: []string{
		"위험", "두려", "두렵", "불안", "대체", "위협", "통제", "감시", "실업", "종속", "파괴", "걱정", "무서",
		"싫", "겁", "공포", "무섭", "끔찍", "않", "아니", "모르", "글쎄", "의심", "별로", "그렇지", "확신",
		"잘 모", "솔직히", "사실", "근데", "하지만", "그러나", "반대", "terrible", "bad", "fear",
		"scary", "threat", "danger", "replace", "control", "worry", "hate", "anxious", "afraid",
		"no", "not", "don't", "but", "however", "doubt",
	},
}
