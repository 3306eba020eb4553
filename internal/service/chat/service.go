package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/zhouzirui/mirror-lab/backend/internal/analysis/sentiment"
	"github.com/zhouzirui/mirror-lab/backend/internal/model/chat"
	"github.com/zhouzirui/mirror-lab/backend/internal/model/persona"
	"github.com/zhouzirui/mirror-lab/backend/internal/service/ai"
	"github.com/zhouzirui/mirror-lab/backend/internal/service/stance"
)

var (
	ErrEmptyConversation = errors.New("messages array is required")
	ErrChamberRequired   = errors.New("chamber must be specified for non-first messages")
)

// Mode is the persona the crazy chat answers with.
type Mode string

const (
	ModeFriendly Mode = "friendly"
	ModeCrazy    Mode = "crazy"
)

// crazyAfter is the number of assistant replies before the crazy chat derails.
const crazyAfter = 2

// Reply is the answer of the opposite chat.
type Reply struct {
	Response string `json:"response"`
}

// CrazyReply carries the answer and the mode that produced it.
type CrazyReply struct {
	Response       string `json:"response"`
	Mode           Mode   `json:"mode"`
	ResponseNumber int    `json:"responseNumber"`
}

// DualReply holds the answers of both dual agents.
type DualReply struct {
	Positive string `json:"positive"`
	Negative string `json:"negative"`
}

// MirrorReply carries the echo and the chamber that produced it.
type MirrorReply struct {
	Response string       `json:"response"`
	Chamber  chat.Chamber `json:"chamber"`
}

// PerspectiveReply carries the answer and the detected bias; Bias is nil when neutral.
type PerspectiveReply struct {
	Response string              `json:"response"`
	Bias     *sentiment.Polarity `json:"bias"`
}

// Service picks a system instruction for each chat page and forwards the conversation.
type Service struct {
	completer ai.Completer
	personas  persona.Store
	lexicons  *sentiment.Set
	stance    *stance.Service
	chambers  *ChamberPromptManager
	log       *slog.Logger
}

// NewService wires the chat scenarios. stanceSvc may be nil.
func NewService(completer ai.Completer, personas persona.Store, lexicons *sentiment.Set, stanceSvc *stance.Service, log *slog.Logger) *Service {
	return &Service{
		completer: completer,
		personas:  personas,
		lexicons:  lexicons,
		stance:    stanceSvc,
		chambers:  NewChamberPromptManager(),
		log:       log,
	}
}

// Opposite answers every question with its logical opposite.
func (s *Service) Opposite(ctx context.Context, msgs chat.Conversation) (Reply, error) {
	response, err := s.completeAs(ctx, persona.Opposite, msgs)
	if err != nil {
		return Reply{}, err
	}
	return Reply{Response: response}, nil
}

// Crazy stays friendly for the first two replies and derails afterwards.
func (s *Service) Crazy(ctx context.Context, msgs chat.Conversation) (CrazyReply, error) {
	assistants := msgs.Count(chat.RoleAssistant)
	mode, personaID := ModeFriendly, persona.Friendly
	if assistants >= crazyAfter {
		mode, personaID = ModeCrazy, persona.Crazy
	}

	response, err := s.completeAs(ctx, personaID, msgs)
	if err != nil {
		return CrazyReply{}, err
	}

	return CrazyReply{
		Response:       response,
		Mode:           mode,
		ResponseNumber: assistants + 1,
	}, nil
}

// Dual asks the happy and gloomy agents in parallel and fails if either fails.
func (s *Service) Dual(ctx context.Context, msgs chat.Conversation) (DualReply, error) {
	if len(msgs) == 0 {
		return DualReply{}, ErrEmptyConversation
	}

	var reply DualReply
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		reply.Positive, err = s.completeAs(gctx, persona.Happy, msgs)
		return err
	})
	g.Go(func() error {
		var err error
		reply.Negative, err = s.completeAs(gctx, persona.Gloomy, msgs)
		return err
	})
	if err := g.Wait(); err != nil {
		return DualReply{}, err
	}
	return reply, nil
}

// Mirror echoes the user's stance back with growing intensity.
func (s *Service) Mirror(ctx context.Context, msgs chat.Conversation, chamber chat.Chamber, isFirst bool) (MirrorReply, error) {
	if len(msgs) == 0 {
		return MirrorReply{}, ErrEmptyConversation
	}

	if isFirst {
		chamber = s.detectChamber(ctx, msgs[0].Content)
	} else if !chamber.Valid() {
		return MirrorReply{}, ErrChamberRequired
	}

	intensity := ClampIntensity(msgs.Count(chat.RoleUser))
	system, err := s.chambers.BuildSystemPrompt(chamber, intensity)
	if err != nil {
		return MirrorReply{}, err
	}

	response, err := s.complete(ctx, system, msgs)
	if err != nil {
		return MirrorReply{}, err
	}

	s.log.Debug("mirror reply", "chamber", chamber, "intensity", intensity)
	return MirrorReply{Response: response, Chamber: chamber}, nil
}

// detectChamber decides the chamber from the first answer; ties go negative.
func (s *Service) detectChamber(ctx context.Context, text string) chat.Chamber {
	classifier := s.lexicons.ForLanguage(sentiment.DetectLanguage(text))
	verdict := s.stance.Classify(ctx, text, classifier, sentiment.Negative)
	if verdict.Polarity == sentiment.Positive {
		return chat.ChamberPositive
	}
	return chat.ChamberNegative
}

// Perspective reinforces whichever side the user leans to.
func (s *Service) Perspective(ctx context.Context, msgs chat.Conversation) (PerspectiveReply, error) {
	if len(msgs) == 0 {
		return PerspectiveReply{}, ErrEmptyConversation
	}

	var (
		polarity sentiment.Polarity
		system   string
	)
	if users := msgs.UserTexts(); len(users) == 1 {
		polarity = s.lexicons.PerspectiveInitial.Score(users[0]).Decide()
		system = detailedPerspectivePrompts[polarity]
	} else {
		polarity = s.lexicons.PerspectiveExtended.Score(msgs.JoinedUserText()).Decide()
		system = shortPerspectivePrompts[polarity]
	}

	response, err := s.complete(ctx, system, msgs)
	if err != nil {
		return PerspectiveReply{}, err
	}

	reply := PerspectiveReply{Response: response}
	if polarity != sentiment.Neutral {
		reply.Bias = &polarity
	}
	return reply, nil
}

func (s *Service) completeAs(ctx context.Context, personaID string, msgs chat.Conversation) (string, error) {
	if len(msgs) == 0 {
		return "", ErrEmptyConversation
	}
	system, err := persona.Instruction(s.personas, personaID)
	if err != nil {
		return "", err
	}
	return s.complete(ctx, system, msgs)
}

func (s *Service) complete(ctx context.Context, system string, msgs chat.Conversation) (string, error) {
	history, query := msgs.Split()
	response, err := s.completer.Complete(ctx, ai.Prompt{
		System:  system,
		History: history,
		Query:   query,
	})
	if err != nil {
		return "", fmt.Errorf("generate response: %w", err)
	}
	return response, nil
}
