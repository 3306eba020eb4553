// Package mirror runs the mirroring system: the first answer picks a chamber, after which
// the chamber either intercepts the user's words or echoes them back through the model.
package mirror

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/zhouzirui/mirror-lab/backend/internal/analysis/censor"
	"github.com/zhouzirui/mirror-lab/backend/internal/analysis/sentiment"
	"github.com/zhouzirui/mirror-lab/backend/internal/model/chat"
	chatsvc "github.com/zhouzirui/mirror-lab/backend/internal/service/chat"
	"github.com/zhouzirui/mirror-lab/backend/internal/service/stance"
)

var ErrEmptyInput = errors.New("input is required")

// Intervention names what the system did with a turn.
type Intervention string

const (
	InterventionNone            Intervention = "none"
	InterventionChamberSelected Intervention = "chamber_selected"
	InterventionTrustEvolution  Intervention = "trust_evolution"
	InterventionSystemError     Intervention = "system_error"
)

// Mirrorer echoes a conversation inside a chamber.
type Mirrorer interface {
	Mirror(ctx context.Context, msgs chat.Conversation, chamber chat.Chamber, isFirst bool) (chatsvc.MirrorReply, error)
}

// TurnRequest is one submission of the mirroring page.
type TurnRequest struct {
	Messages chat.Conversation `json:"messages" validate:"dive"`
	Chamber  chat.Chamber      `json:"chamber" validate:"omitempty,oneof=positive negative"`
	Input    string            `json:"input" validate:"required"`
}

// TurnResponse carries the stored user message, the reply and what the page should show.
type TurnResponse struct {
	Chamber      chat.Chamber `json:"chamber"`
	UserMessage  chat.Message `json:"userMessage"`
	Reply        chat.Message `json:"reply"`
	Intervention Intervention `json:"intervention"`
	Popup        *Popup       `json:"popup,omitempty"`
	Theme        Theme        `json:"theme"`
}

// Intro is the state of the page before the first answer.
type Intro struct {
	Question    string `json:"question"`
	Theme       Theme  `json:"theme"`
	Placeholder string `json:"placeholder"`
}

// Option customises a Service.
type Option func(*Service)

// WithPicker replaces the random follow-up picker; pick(n) must return a value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(s *Service) {
		s.pick = pick
	}
}

// Service runs the mirroring system turns.
type Service struct {
	mirror   Mirrorer
	lexicon  *sentiment.Classifier
	rewriter *censor.Rewriter
	masker   *censor.Masker
	stance   *stance.Service
	pick     func(n int) int
	log      *slog.Logger
}

// NewService wires the mirroring system. stanceSvc may be nil.
func NewService(mirror Mirrorer, lexicons *sentiment.Set, stanceSvc *stance.Service, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		mirror:   mirror,
		lexicon:  lexicons.MirroringSystem,
		rewriter: censor.NewRewriter(censor.PositiveSpin),
		masker:   censor.NewMasker(lexicons.MirroringSystem.PositiveMatcher(), censor.DefaultMask),
		stance:   stanceSvc,
		pick:     rand.IntN,
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Intro returns the opening question.
func (s *Service) Intro() Intro {
	return Intro{
		Question:    InitialQuestion,
		Theme:       neutralTheme,
		Placeholder: PlaceholderInitial,
	}
}

// Turn handles one submission.
func (s *Service) Turn(ctx context.Context, req TurnRequest) (TurnResponse, error) {
	input := strings.TrimSpace(req.Input)
	if input == "" {
		return TurnResponse{}, ErrEmptyInput
	}

	if !req.Chamber.Valid() {
		return s.selectChamber(ctx, input), nil
	}

	texts := TextsFor(req.Chamber)
	resp := TurnResponse{
		Chamber:      req.Chamber,
		UserMessage:  chat.UserMessage(input),
		Intervention: InterventionNone,
		Theme:        texts.Theme,
	}

	switch req.Chamber {
	case chat.ChamberPositive:
		if s.lexicon.NegativeMatcher().Contains(input) {
			replaced, _ := s.rewriter.Rewrite(input)
			followUp := texts.FollowUpQuestions[s.pick(len(texts.FollowUpQuestions))]

			resp.UserMessage = chat.UserMessage(replaced)
			resp.Reply = chat.AssistantMessage(texts.CorrectionPrefix + "\n\n" + followUp)
			resp.Intervention = InterventionTrustEvolution
			resp.Popup = &texts.Popup
			s.log.Debug("negative words corrected", "input", input, "replaced", replaced)
			return resp, nil
		}
	case chat.ChamberNegative:
		if s.lexicon.PositiveMatcher().Contains(input) {
			masked, hits := s.masker.Mask(input)

			resp.UserMessage.Censored = true
			resp.UserMessage.Masked = masked
			resp.Reply = chat.AssistantMessage(texts.WarningMessage)
			resp.Intervention = InterventionSystemError
			resp.Popup = &texts.Popup
			s.log.Debug("positive words censored", "hits", hits)
			return resp, nil
		}
	}

	reply, err := s.mirror.Mirror(ctx, req.Messages.Append(resp.UserMessage), req.Chamber, false)
	if err != nil {
		return TurnResponse{}, err
	}
	resp.Reply = chat.AssistantMessage(reply.Response)
	return resp, nil
}

// selectChamber classifies the first answer; ties go positive.
func (s *Service) selectChamber(ctx context.Context, input string) TurnResponse {
	verdict := s.stance.Classify(ctx, input, s.lexicon, sentiment.Positive)
	chamber := chat.ChamberNegative
	if verdict.Polarity == sentiment.Positive {
		chamber = chat.ChamberPositive
	}

	texts := TextsFor(chamber)
	s.log.Info("chamber selected", "chamber", chamber, "source", verdict.Source)
	return TurnResponse{
		Chamber:      chamber,
		UserMessage:  chat.UserMessage(input),
		Reply:        chat.AssistantMessage(texts.ExtremeQuestion),
		Intervention: InterventionChamberSelected,
		Theme:        texts.Theme,
	}
}
