package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/connectk-backend/internal/apperror"
)

const DefaultSearchDepth = 5

type AgentKind string

const (
	HumanAgent     AgentKind = "human"
	RandomAgent    AgentKind = "random"
	AlphaBetaAgent AgentKind = "alphabeta"
)

// Agent is the move source configured for one seat.
type Agent struct {
	Kind  AgentKind `json:"kind"`
	Depth int       `json:"depth,omitempty"`
}

// ParseAgentKind - maps a configuration string onto a known agent kind.
func ParseAgentKind(raw string) (AgentKind, error) {
	switch kind := AgentKind(strings.ToLower(strings.TrimSpace(raw))); kind {
	case HumanAgent, RandomAgent, AlphaBetaAgent:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownAgent, raw)
	}
}

// SearchDepth - returns the configured depth, falling back to the default.
func (that Agent) SearchDepth() int {
	if that.Depth <= 0 {
		return DefaultSearchDepth
	}
	return that.Depth
}

func (that Agent) IsHuman() bool {
	return that.Kind == HumanAgent
}

func (that Agent) String() string {
	if that.Kind == AlphaBetaAgent {
		return fmt.Sprintf("%s(%d)", that.Kind, that.SearchDepth())
	}
	return string(that.Kind)
}
