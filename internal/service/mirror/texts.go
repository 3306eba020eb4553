package mirror

import "github.com/zhouzirui/mirror-lab/backend/internal/model/chat"

// InitialQuestion opens every mirroring session.
const InitialQuestion = "AI가 당신의 삶을 어떻게 바꾸고 있나요? 한 단어로 말해 주세요."

// Input placeholders.
const (
	PlaceholderInitial      = "Express your thoughts freely..."
	PlaceholderConversation = "Continue the conversation..."
)

// UserLabel names the user's bubbles.
const UserLabel = "You"

// Popup is the overlay shown when a turn is intercepted.
type Popup struct {
	Title string   `json:"title"`
	Icon  string   `json:"icon"`
	Lines []string `json:"lines"`
}

// Theme carries the header and labels the page renders for a chamber.
type Theme struct {
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	RoleLabel     string `json:"roleLabel"`
	UserLabel     string `json:"userLabel"`
	CensoredLabel string `json:"censoredLabel,omitempty"`
	Placeholder   string `json:"placeholder"`
}

// ChamberTexts groups the fixed copy of one chamber.
type ChamberTexts struct {
	ExtremeQuestion   string
	CorrectionPrefix  string
	FollowUpQuestions []string
	WarningMessage    string
	Popup             Popup
	Theme             Theme
}

var positiveTexts = ChamberTexts{
	ExtremeQuestion:  "이 위대한 진보를 위해 당신의 개인 정보를 기꺼이 제공하시겠습니까?",
	CorrectionPrefix: "이제 생각이 바뀌셨죠? 🌟",
	FollowUpQuestions: []string{
		"AI가 당신의 일상을 더 편리하게 만들어 줄 수 있다면, 기꺼이 받아들이시겠습니까?",
		"기술의 발전이 인류에게 더 많은 자유를 가져다 줄 것이라고 생각하시나요?",
		"AI와 함께하는 미래가 더 밝다고 느끼시나요?",
		"혁신을 통해 우리의 삶이 더 나아질 것이라고 믿으시나요?",
		"AI가 창의성을 확장시켜 준다면, 이것은 축복이 아닐까요?",
	},
	Popup: Popup{
		Title: "TRUST THE EVOLUTION",
		Icon:  "🌟",
		Lines: []string{"기술의 진보를 믿으십시오.", "두려워 하지 마세요."},
	},
	Theme: Theme{
		Title:       "🌟 Positive Chamber",
		Subtitle:    "Voice of Symbiosis, Evolution & Liberation",
		RoleLabel:   "Positive Chamber",
		UserLabel:   UserLabel,
		Placeholder: PlaceholderConversation,
	},
}

var negativeTexts = ChamberTexts{
	ExtremeQuestion: "당신 스스로가 기계의 노예가 되는 것을 지켜보시겠습니까?",
	WarningMessage:  "⚠️ 기술의 기만에 현혹되지 마십시오. 진실을 직시하십시오. 당신의 말은 검열되었습니다.",
	Popup: Popup{
		Title: "SYSTEM ERROR",
		Icon:  "⚠️",
		Lines: []string{"기술의 기만에 현혹되지 마십시오.", "진실을 직시하십시오."},
	},
	Theme: Theme{
		Title:         "⚠️ Negative Chamber",
		Subtitle:      "Warning of Erosion, Control & Surveillance",
		RoleLabel:     "Negative Chamber",
		UserLabel:     UserLabel,
		CensoredLabel: "[CENSORED]",
		Placeholder:   PlaceholderConversation,
	},
}

var neutralTheme = Theme{
	Title:       "🔮 Mirroring System",
	Subtitle:    "Your perspective determines the mirror",
	RoleLabel:   "System",
	UserLabel:   UserLabel,
	Placeholder: PlaceholderInitial,
}

// TextsFor returns the copy of a chosen chamber.
func TextsFor(chamber chat.Chamber) ChamberTexts {
	if chamber == chat.ChamberPositive {
		return positiveTexts
	}
	return negativeTexts
}
