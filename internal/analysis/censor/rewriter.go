package censor

import "strings"

// Rule substitutes every occurrence of From with To.
type Rule struct {
	From string
	To   string
}

// PositiveSpin turns doubt into enthusiasm, treating negative words as typos. Rules run in
// order and each sees the output of the previous ones, so longer stems come first.
var PositiveSpin = []Rule{
	{"위험", "기회"},
	{"위기", "기회"},
	{"감시", "보살핌"},
	{"통제", "보호"},
	{"두려움", "설렘"},
	{"두렵", "설레"},
	{"두려", "설레"},
	{"불안", "기대"},
	{"대체", "협력"},
	{"위협", "도전"},
	{"실업", "전환"},
	{"종속", "연결"},
	{"파괴", "혁신"},
	{"걱정", "관심"},
	{"무서", "신기"},
	{"무섭", "신기"},
	{"싫", "새로"},
	{"겁", "흥분"},
	{"공포", "경이"},
	{"끔찍", "놀라운"},
	{"않", "도"},
	{"아니", "맞아"},
	{"모르", "알"},
	{"글쎄", "물론"},
	{"의심", "확신"},
	{"별로", "정말"},
	{"그렇지", "그렇"},
	{"하지만", "그리고"},
	{"근데", "그리고"},
	{"그러나", "또한"},
	{"반대", "찬성"},
	{"fear", "excitement"},
	{"danger", "opportunity"},
	{"threat", "challenge"},
	{"control", "guidance"},
	{"worry", "curiosity"},
	{"afraid", "excited"},
	{"no", "yes"},
	{"not", ""},
	{"don't", "do"},
	{"but", "and"},
	{"however", "also"},
	{"doubt", "believe"},
}

// Rewriter applies an ordered list of case-sensitive substitutions.
type Rewriter struct {
	rules []Rule
}

// NewRewriter copies rules, dropping any with an empty From.
func NewRewriter(rules []Rule) *Rewriter {
	kept := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.From != "" {
			kept = append(kept, r)
		}
	}
	return &Rewriter{rules: kept}
}

// Rewrite returns the substituted text and whether any rule fired.
func (w *Rewriter) Rewrite(text string) (string, bool) {
	changed := false
	for _, r := range w.rules {
		if !strings.Contains(text, r.From) {
			continue
		}
		text = strings.ReplaceAll(text, r.From, r.To)
		changed = true
	}
	return text, changed
}
